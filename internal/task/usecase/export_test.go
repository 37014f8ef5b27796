package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"dayflow/internal/model"
)

func TestExportCSV(t *testing.T) {
	sc := model.Scope{OwnerID: "u1"}
	_, uc := seedRepo(t)

	raw, err := uc.ExportCSV(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv output: %v", err)
	}
	if len(records) != 4 { // header + 3 tasks
		t.Fatalf("expected 4 rows, got %d", len(records))
	}
	header := records[0]
	if header[0] != "id" || header[1] != "title" || header[7] != "recurrence" {
		t.Errorf("unexpected header: %v", header)
	}
	for i, row := range records[1:] {
		if row[0] == "" || row[1] == "" {
			t.Errorf("row %d missing id or title: %v", i+1, row)
		}
		if row[8] != "false" {
			t.Errorf("row %d completed = %q, want false", i+1, row[8])
		}
	}
}

func TestExportCSVEmpty(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil)

	raw, err := uc.ExportCSV(context.Background(), model.Scope{OwnerID: "nobody"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv output: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected header only, got %d rows", len(records))
	}
}

package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
)

func TestExportGames(t *testing.T) {
	run, games := sampleRun("alphabeta")
	run.ID = 7
	rows := GameRows(run, games)
	if len(rows) != 2 {
		t.Fatalf("GameRows() returned %d rows, want 2", len(rows))
	}

	outPath := filepath.Join(t.TempDir(), "out", "games.parquet")
	if err := ExportGames(outPath, rows); err != nil {
		t.Fatalf("ExportGames() failed: %v", err)
	}
	if _, err := os.Stat(outPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		t.Fatalf("stat export: %v", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		t.Fatalf("parquet.OpenFile() failed: %v", err)
	}
	reader := parquet.NewGenericReader[GameRow](pf)
	defer reader.Close()

	if reader.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", reader.NumRows())
	}

	got := make([]GameRow, 2)
	n, err := reader.Read(got)
	if err != nil && err != io.EOF {
		t.Fatalf("Read() failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("Read() n = %d, want 2", n)
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], rows[i])
		}
	}
}

func TestGameRowsEmpty(t *testing.T) {
	rows := GameRows(RunRecord{Strategy: "minimax"}, nil)
	if len(rows) != 0 {
		t.Errorf("GameRows(nil) = %d rows, want 0", len(rows))
	}
}

package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// GameRow is one finished benchmark game in the Parquet export.
type GameRow struct {
	RunID      int64  `parquet:"run_id"`
	Strategy   string `parquet:"strategy,dict"`
	Depth      int32  `parquet:"depth"`
	Index      int32  `parquet:"game_index"`
	Seed       int64  `parquet:"seed"`
	Status     string `parquet:"status,dict"`
	Won        bool   `parquet:"won"`
	Score      int64  `parquet:"score"`
	MaxTile    int32  `parquet:"max_tile"`
	Moves      int32  `parquet:"moves"`
	DurationMS int64  `parquet:"duration_ms"`
}

// GameRows converts the games of a run into export rows.
func GameRows(run RunRecord, games []GameRecord) []GameRow {
	rows := make([]GameRow, 0, len(games))
	for _, g := range games {
		rows = append(rows, GameRow{
			RunID:      run.ID,
			Strategy:   run.Strategy,
			Depth:      int32(run.Depth),
			Index:      int32(g.Index),
			Seed:       g.Seed,
			Status:     g.Status,
			Won:        g.Won,
			Score:      int64(g.Score),
			MaxTile:    int32(g.MaxTile),
			Moves:      int32(g.Moves),
			DurationMS: g.DurationMS,
		})
	}
	return rows
}

// ExportGames writes rows to a zstd-compressed Parquet file at outPath.
// The file is written to a temporary path and renamed into place.
func ExportGames(outPath string, rows []GameRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "bench_game_v1"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage: cannot write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("storage: cannot rename parquet: %w", err)
	}
	return nil
}

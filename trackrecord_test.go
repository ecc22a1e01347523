package embryogen

import (
	"strings"
	"testing"
)

func TestParseTrackRecords(t *testing.T) {
	input := `# comment line
0.0 1 2 3 10 0 0
0.5 2 2 3 10 0 0
`
	records, err := ParseTrackRecords(strings.NewReader(input), Vec3[float64]{X: 1, Y: 1, Z: 1}, Vec3[float64]{})
	if err != nil {
		t.Fatalf("ParseTrackRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != 10 || records[0].Pos.X != 1 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
}

func TestParseTrackRecordsRejectsBadLine(t *testing.T) {
	_, err := ParseTrackRecords(strings.NewReader("0.0 1 2\n"), Vec3[float64]{X: 1, Y: 1, Z: 1}, Vec3[float64]{})
	if err == nil {
		t.Error("expected error for malformed line")
	}
}

func TestCTCTrackTableWriteCTC(t *testing.T) {
	table := NewCTCTrackTable()
	table.Observe(1, 0, 0)
	table.Observe(1, 1, 0)
	table.Observe(2, 2, 1)

	var sb strings.Builder
	if err := table.WriteCTC(&sb); err != nil {
		t.Fatalf("WriteCTC: %v", err)
	}
	want := "1 0 1 0\n2 2 2 1\n"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

package materials

import (
	"math"
	"testing"

	"github.com/omnihola/ashby-plot/pkg/errors"
)

func sampleDataset() *Dataset {
	return &Dataset{
		Kind: KindRanges,
		Records: []Record{
			{
				Name:     "Steel",
				Category: "Metals",
				Props: map[Property]Range{
					PropDensity:      {7800, 8000},
					PropYoungModulus: {190, 210},
					PropPoisson:      {0.27, 0.30},
				},
			},
			{
				Name:     "Aluminium",
				Category: "Metals",
				Props: map[Property]Range{
					PropDensity:      {2600, 2800},
					PropYoungModulus: {68, 72},
				},
			},
			{
				Name:     "PLA",
				Category: "Polymers",
				Props: map[Property]Range{
					PropDensity:      {1200, 1300},
					PropYoungModulus: {2.7, 3.5},
				},
			},
		},
	}
}

func TestCategories(t *testing.T) {
	d := sampleDataset()
	got := d.Categories()

	want := []string{"Metals", "Polymers"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestByCategory(t *testing.T) {
	d := sampleDataset()
	groups := d.ByCategory()

	if len(groups["Metals"]) != 2 {
		t.Errorf("Metals group has %d records, want 2", len(groups["Metals"]))
	}
	if len(groups["Polymers"]) != 1 {
		t.Errorf("Polymers group has %d records, want 1", len(groups["Polymers"]))
	}
	if groups["Metals"][0].Name != "Steel" {
		t.Errorf("record order not preserved: %q first", groups["Metals"][0].Name)
	}
}

func TestCornerPoints(t *testing.T) {
	d := sampleDataset()
	recs := d.ByCategory()["Metals"]

	pts, err := d.CornerPoints(recs, PropDensity, PropYoungModulus)
	if err != nil {
		t.Fatalf("CornerPoints: %v", err)
	}
	if len(pts) != 4 {
		t.Fatalf("got %d points, want 4 (two corners per record)", len(pts))
	}
	if pts[0].X != 7800 || pts[0].Y != 190 {
		t.Errorf("low corner = %v, want (7800, 190)", pts[0])
	}
	if pts[1].X != 8000 || pts[1].Y != 210 {
		t.Errorf("high corner = %v, want (8000, 210)", pts[1])
	}
}

func TestCornerPointsMissingProperty(t *testing.T) {
	d := sampleDataset()
	recs := d.ByCategory()["Metals"]

	// Aluminium has no Poisson range.
	_, err := d.CornerPoints(recs, PropDensity, PropPoisson)
	if !errors.Is(err, errors.ErrCodeUnknownProperty) {
		t.Errorf("error = %v, want UNKNOWN_PROPERTY", err)
	}
}

func TestDerivePoissonDifference(t *testing.T) {
	d := sampleDataset()
	d.DerivePoissonDifference()

	r, err := d.Records[0].Range(PropPoissonDifference)
	if err != nil {
		t.Fatalf("Range: %v", err)
	}

	// Bounds swap: low = 1/(1+0.30), high = 1/(1+0.27).
	if math.Abs(r.Low-1/1.30) > 1e-12 || math.Abs(r.High-1/1.27) > 1e-12 {
		t.Errorf("derived range = %+v", r)
	}
	if r.Low > r.High {
		t.Error("derived range inverted")
	}

	// Records without Poisson are untouched.
	if _, err := d.Records[1].Range(PropPoissonDifference); err == nil {
		t.Error("Aluminium unexpectedly gained a Poisson difference")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"ranges", KindRanges, false},
		{"values", KindValues, false},
		{"points", "", true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHighlightMaterialPoint(t *testing.T) {
	h := HighlightMaterial{
		Name:  "Foam",
		Color: "blue",
		Values: map[Property]float64{
			PropYoungModulus: 0.124e-3,
			PropPoisson:      0.45,
			PropDensity:      400,
		},
	}

	p, err := h.Point(PropDensity, PropYoungModulus)
	if err != nil {
		t.Fatalf("Point: %v", err)
	}
	if p.X != 400 || p.Y != 0.124e-3 {
		t.Errorf("Point = %v", p)
	}

	// Poisson difference derives from Poisson on the fly.
	p, err = h.Point(PropDensity, PropPoissonDifference)
	if err != nil {
		t.Fatalf("Point: %v", err)
	}
	if math.Abs(p.Y-1/1.45) > 1e-12 {
		t.Errorf("derived Poisson difference = %v, want %v", p.Y, 1/1.45)
	}

	if _, err := h.Point(PropResistivity, PropDensity); !errors.Is(err, errors.ErrCodeUnknownProperty) {
		t.Errorf("error = %v, want UNKNOWN_PROPERTY", err)
	}
}

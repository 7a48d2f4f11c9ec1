package genome

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCatalogCloneIsIndependent(t *testing.T) {
	c := Catalog{
		"g1": {ID: "g1", Translation: "MKP", Start: 0, End: 9, Strand: "+"},
		"g2": {ID: "g2", Translation: "MK", Start: 20, End: 26, Strand: "-"},
	}
	n := c.Clone()
	if !reflect.DeepEqual(c, n) {
		t.Fatalf("clone differs: %v vs %v", n, c)
	}
	delete(n, "g1")
	n["g3"] = Gene{ID: "g3", Start: 30, End: 33}
	if _, found := c["g1"]; !found {
		t.Error("deleting from the clone removed g1 from the original")
	}
	if _, found := c["g3"]; found {
		t.Error("inserting into the clone added g3 to the original")
	}
}

func TestCatalogIDsSorted(t *testing.T) {
	c := Catalog{"b": {}, "a": {}, "c": {}}
	want := []string{"a", "b", "c"}
	if got := c.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestGeneNuclLen(t *testing.T) {
	g := Gene{Translation: "MKPNQ"}
	if g.NuclLen() != 15 {
		t.Errorf("NuclLen() = %d, want 15", g.NuclLen())
	}
}

func TestReadCatalog(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "catalog.json")
	data := `{"g1":{"Translation":"MKP","Start":0,"End":9,"Strand":"+"},` +
		`"g2":{"Translation":"MK","Start":20,"End":26,"Strand":"-"}}`
	if err := os.WriteFile(fileName, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	genes, err := ReadCatalog(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if len(genes) != 2 {
		t.Fatalf("read %d genes, want 2", len(genes))
	}
	g1 := genes["g1"]
	if g1.ID != "g1" {
		t.Errorf("gene id not filled from key: %q", g1.ID)
	}
	if g1.Translation != "MKP" || g1.Start != 0 || g1.End != 9 || g1.Strand != "+" {
		t.Errorf("unexpected g1 record: %+v", g1)
	}
}

func TestReadCatalogInvalidInterval(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "catalog.json")
	data := `{"g1":{"Translation":"MKP","Start":9,"End":0,"Strand":"+"}}`
	if err := os.WriteFile(fileName, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadCatalog(fileName); err == nil {
		t.Error("inverted interval did not fail")
	}
}

func TestLoadGenome(t *testing.T) {
	dir := t.TempDir()
	fnaFile := filepath.Join(dir, "genome.fna")
	catalogFile := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(fnaFile, []byte(">rec\nAAACCCGGGTTT\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(catalogFile, []byte(`{"g1":{"Translation":"MKP","Start":0,"End":9,"Strand":"+"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadGenome(fnaFile, catalogFile, "recip")
	if err != nil {
		t.Fatal(err)
	}
	if g.ID != "recip" {
		t.Errorf("genome id = %q, want recip", g.ID)
	}
	if string(g.Seq) != "AAACCCGGGTTT" {
		t.Errorf("sequence = %q", g.Seq)
	}
	if len(g.Genes) != 1 {
		t.Errorf("read %d genes, want 1", len(g.Genes))
	}
}

func TestLoadGenomeGeneOutOfBounds(t *testing.T) {
	dir := t.TempDir()
	fnaFile := filepath.Join(dir, "genome.fna")
	catalogFile := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(fnaFile, []byte(">rec\nAAACCC\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(catalogFile, []byte(`{"g1":{"Translation":"MKP","Start":0,"End":9,"Strand":"+"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGenome(fnaFile, catalogFile, "recip"); err == nil {
		t.Error("gene interval past the sequence end did not fail")
	}
}

func TestWriteProteinsSortedOrder(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "genes.faa")
	c := Catalog{
		"b": {ID: "b", Translation: "MK"},
		"a": {ID: "a", Translation: "MP"},
	}
	if err := WriteProteins(fileName, c); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	want := ">a\nMP\n>b\nMK\n"
	if string(data) != want {
		t.Errorf("proteins file = %q, want %q", data, want)
	}
}

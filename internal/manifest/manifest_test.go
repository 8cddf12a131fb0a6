package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `accession,local_file_path,genome_size,gtdb_taxonomy,species
RS_GCF_000005845.2,/g/a.fna.gz,4641652,d__Bacteria,s__Escherichia coli
GB_GCA_000008865.2,/g/b.fna.gz,5498578.0,d__Bacteria,"s__Escherichia coli, O157"
`

func TestRead(t *testing.T) {
	m, err := Read(strings.NewReader(sample), "")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("want 2 genomes, got %d", m.Len())
	}
	g := m.Genomes[1]
	if g.Accession != "GB_GCA_000008865.2" || g.Path != "/g/b.fna.gz" || g.GenomeSize != 5498578 {
		t.Fatalf("unexpected row: %+v", g)
	}
	if g.Label != "s__Escherichia coli, O157" {
		t.Fatalf("quoted label not parsed: %q", g.Label)
	}
	if m.MaxGenomeSize() != 5498578 {
		t.Fatalf("max genome size %d", m.MaxGenomeSize())
	}
}

func TestReadCustomLabel(t *testing.T) {
	m, err := Read(strings.NewReader(sample), "accession")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if m.Genomes[0].Label != "RS_GCF_000005845.2" {
		t.Fatalf("label=%q", m.Genomes[0].Label)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name, data, label string
	}{
		{"empty", "", ""},
		{"missing path column", "accession,genome_size,species\nx,1,s\n", ""},
		{"missing label column", sample, "genus"},
		{"bad size", "accession,local_file_path,genome_size,species\nx,p,abc,s\n", ""},
		{"fractional size", "accession,local_file_path,genome_size,species\nx,p,1.5,s\n", ""},
		{"negative size", "accession,local_file_path,genome_size,species\nx,p,-3,s\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.data), tt.label); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), "")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("want not-found error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "manifest.csv")
	if err := os.WriteFile(p, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(p, "species")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("want 2, got %d", m.Len())
	}
}

func TestMaxGenomeSizeEmpty(t *testing.T) {
	if (&Manifest{}).MaxGenomeSize() != 0 {
		t.Fatal("empty manifest max size should be 0")
	}
}

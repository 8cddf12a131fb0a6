// core/sampler/sampler_test.go
package sampler

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"contigsampler/core/fasta"
	"contigsampler/core/nucleotide"
)

func quietLog() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func randomDNA(n int, seed uint64) []byte {
	r := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]byte, n)
	for i := range out {
		out[i] = "ACGT"[r.IntN(4)]
	}
	return out
}

func genomeOf(seqs ...string) *fasta.Genome {
	g := fasta.Empty("mem.fna.gz")
	for i, s := range seqs {
		g.Add(fasta.NewEntry(string(rune('a'+i)), []byte(s)))
	}
	return g
}

func newSampler(t *testing.T, cfg Config, log logrus.FieldLogger) *Sampler {
	t.Helper()
	s, err := New(cfg, log)
	if err != nil {
		t.Fatalf("new sampler: %v", err)
	}
	return s
}

func checkInvariants(t *testing.T, cfg Config, g *fasta.Genome, cs []Contig) {
	t.Helper()
	for i, c := range cs {
		src := g.Entries[c.Header].Seq
		n := len(c.Sequence)
		if n < cfg.MinLen || n > cfg.MaxLen || n > len(src) {
			t.Fatalf("contig %d: length %d outside [%d,%d] or > %d", i, n, cfg.MinLen, cfg.MaxLen, len(src))
		}
		if c.End-c.Start != n {
			t.Fatalf("contig %d: end-start=%d, len=%d", i, c.End-c.Start, n)
		}
		if strings.ContainsAny(c.Sequence, "Nn") {
			t.Fatalf("contig %d contains N", i)
		}
		fwd := string(src[c.Start:c.End])
		switch c.Strand {
		case StrandForward:
			if c.Sequence != fwd {
				t.Fatalf("contig %d: + strand does not match source window", i)
			}
		case StrandReverse:
			if string(nucleotide.RevComp([]byte(c.Sequence))) != fwd {
				t.Fatalf("contig %d: - strand is not the reverse complement of the window", i)
			}
		default:
			t.Fatalf("contig %d: bad strand %q", i, c.Strand)
		}
	}
}

func TestSampleLargeGenomeReachesTarget(t *testing.T) {
	cfg := Config{MinLen: 500, MaxLen: 2000, Decay: 0.1, AttemptMultiplier: 5}
	s := newSampler(t, cfg, quietLog())
	g := genomeOf(string(randomDNA(1_000_000, 7)))

	res := s.Sample(context.Background(), g, "E. coli", 100, rand.New(rand.NewPCG(1, 2)))
	if len(res.Contigs) != 100 {
		t.Fatalf("want 100 contigs, got %d", len(res.Contigs))
	}
	if res.Exhausted || res.Attempts != 100 {
		t.Fatalf("exhausted=%v attempts=%d", res.Exhausted, res.Attempts)
	}
	checkInvariants(t, cfg, g, res.Contigs)
	for _, c := range res.Contigs {
		if c.Label != "E. coli" || c.Path != "mem.fna.gz" {
			t.Fatalf("label/path not propagated: %+v", c)
		}
	}
}

func TestSampleShortGenomeYieldsNothing(t *testing.T) {
	cfg := Config{MinLen: 500, MaxLen: 2000, Decay: 0.5, AttemptMultiplier: 5}
	s := newSampler(t, cfg, quietLog())
	g := genomeOf(string(randomDNA(300, 3)))

	res := s.Sample(context.Background(), g, "x", 4, rand.New(rand.NewPCG(1, 2)))
	if len(res.Contigs) != 0 {
		t.Fatalf("want 0 contigs, got %d", len(res.Contigs))
	}
	if !res.Exhausted || res.Attempts != 20 || res.RejectedBy(RejectTooShort) != 20 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSampleAllNExhaustsBudget(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	cfg := Config{MinLen: 10, MaxLen: 20, Decay: 0.5, AttemptMultiplier: 5}
	s := newSampler(t, cfg, log)
	g := genomeOf(strings.Repeat("N", 200))

	res := s.Sample(context.Background(), g, "x", 3, rand.New(rand.NewPCG(9, 9)))
	if len(res.Contigs) != 0 || !res.Exhausted {
		t.Fatalf("want exhausted empty result, got %+v", res)
	}
	if res.RejectedBy(RejectAmbiguous) != 15 {
		t.Fatalf("want 15 ambiguous rejections, got %d", res.RejectedBy(RejectAmbiguous))
	}
	if !strings.Contains(buf.String(), "attempt budget exhausted") {
		t.Fatalf("missing exhaustion warning in log: %q", buf.String())
	}
	for i, p := range g.Entries["a"].Prob {
		if p != 1 {
			t.Fatalf("rejected candidates must not decay, prob[%d]=%v", i, p)
		}
	}
}

func TestSampleLargeTargetOnTinyGenomeKeepsSmallBuffer(t *testing.T) {
	cfg := Config{MinLen: 500, MaxLen: 2000, Decay: 0.5, AttemptMultiplier: 1}
	s := newSampler(t, cfg, quietLog())
	g := genomeOf(string(randomDNA(300, 4)))

	res := s.Sample(context.Background(), g, "x", 50_000, rand.New(rand.NewPCG(1, 2)))
	if len(res.Contigs) != 0 || !res.Exhausted {
		t.Fatalf("want exhausted empty result, got %d contigs", len(res.Contigs))
	}
	if cap(res.Contigs) > maxPrealloc {
		t.Fatalf("preallocated %d contigs, want at most %d", cap(res.Contigs), maxPrealloc)
	}
}

func TestSampleFullyDecayedMapStillReachesTarget(t *testing.T) {
	// repeated hits drive 1e-300 weights to zero, leaving no mass to draw from
	cfg := Config{MinLen: 10, MaxLen: 10, Decay: 1e-300, AttemptMultiplier: 5}
	s := newSampler(t, cfg, quietLog())
	g := genomeOf(string(randomDNA(20, 8)))

	res := s.Sample(context.Background(), g, "x", 50, rand.New(rand.NewPCG(3, 3)))
	if len(res.Contigs) != 50 || res.Exhausted {
		t.Fatalf("want 50 contigs, got %d (exhausted=%v)", len(res.Contigs), res.Exhausted)
	}
	if res.Degenerate == 0 {
		t.Fatal("expected uniform fallback draws once the map decayed to zero")
	}
	checkInvariants(t, cfg, g, res.Contigs)
}

func TestSampleEmptyGenome(t *testing.T) {
	s := newSampler(t, Config{MinLen: 1, MaxLen: 2, Decay: 1}, quietLog())
	res := s.Sample(context.Background(), fasta.Empty("gone.fna.gz"), "x", 10, rand.New(rand.NewPCG(1, 1)))
	if len(res.Contigs) != 0 || res.Attempts != 0 {
		t.Fatalf("empty genome: %+v", res)
	}
}

func TestSampleZeroTarget(t *testing.T) {
	s := newSampler(t, Config{MinLen: 1, MaxLen: 2, Decay: 1}, quietLog())
	res := s.Sample(context.Background(), genomeOf("ACGT"), "x", 0, rand.New(rand.NewPCG(1, 1)))
	if len(res.Contigs) != 0 || res.Attempts != 0 {
		t.Fatalf("zero target: %+v", res)
	}
}

func TestSampleDeterministic(t *testing.T) {
	cfg := Config{MinLen: 50, MaxLen: 120, Decay: 0.3, AttemptMultiplier: 5}
	s := newSampler(t, cfg, quietLog())
	seqs := []string{string(randomDNA(5000, 1)), string(randomDNA(800, 2)), "ACGTNNNNACGT"}

	run := func() Result {
		return s.Sample(context.Background(), genomeOf(seqs...), "x", 40, rand.New(rand.NewPCG(42, 43)))
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed and input produced different results")
	}
	checkInvariants(t, cfg, genomeOf(seqs...), a.Contigs)
}

func TestSampleWholeSequenceWhenRangeCollapses(t *testing.T) {
	cfg := Config{MinLen: 10, MaxLen: 10, Decay: 0.5}
	s := newSampler(t, cfg, quietLog())
	g := genomeOf("ACGTACGTAC")

	res := s.Sample(context.Background(), g, "x", 3, rand.New(rand.NewPCG(5, 6)))
	if len(res.Contigs) != 3 {
		t.Fatalf("want 3 contigs, got %d", len(res.Contigs))
	}
	for _, c := range res.Contigs {
		if c.Start != 0 || c.End != 10 {
			t.Fatalf("want whole sequence [0,10), got [%d,%d)", c.Start, c.End)
		}
	}
	// three acceptances over the same window: 0.5^3
	for i, p := range g.Entries["a"].Prob {
		if p != 0.125 {
			t.Fatalf("prob[%d]=%v, want 0.125", i, p)
		}
	}
}

func TestSampleSkipsShortSequencesInMixedGenome(t *testing.T) {
	cfg := Config{MinLen: 100, MaxLen: 200, Decay: 0.5}
	s := newSampler(t, cfg, quietLog())
	g := genomeOf("ACGT", string(randomDNA(10_000, 11)))

	res := s.Sample(context.Background(), g, "x", 20, rand.New(rand.NewPCG(3, 4)))
	if len(res.Contigs) != 20 {
		t.Fatalf("want 20 contigs, got %d (rejections %v)", len(res.Contigs), res.Rejected)
	}
	for _, c := range res.Contigs {
		if c.Header != "b" {
			t.Fatalf("contig drawn from too-short sequence %q", c.Header)
		}
	}
	checkInvariants(t, cfg, g, res.Contigs)
}

func TestSampleCancelled(t *testing.T) {
	s := newSampler(t, Config{MinLen: 5, MaxLen: 10, Decay: 0.5}, quietLog())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := s.Sample(ctx, genomeOf(string(randomDNA(1000, 1))), "x", 10, rand.New(rand.NewPCG(1, 1)))
	if len(res.Contigs) != 0 || res.Exhausted {
		t.Fatalf("cancelled session should stop before any attempt: %+v", res)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", Config{MinLen: 500, MaxLen: 2000, Decay: 0.1, AttemptMultiplier: 5}, true},
		{"equal lengths", Config{MinLen: 10, MaxLen: 10, Decay: 1, AttemptMultiplier: 1}, true},
		{"min above max", Config{MinLen: 20, MaxLen: 10, Decay: 0.5, AttemptMultiplier: 5}, false},
		{"zero min", Config{MinLen: 0, MaxLen: 10, Decay: 0.5, AttemptMultiplier: 5}, false},
		{"zero decay", Config{MinLen: 1, MaxLen: 10, Decay: 0, AttemptMultiplier: 5}, false},
		{"decay above one", Config{MinLen: 1, MaxLen: 10, Decay: 1.5, AttemptMultiplier: 5}, false},
		{"no attempts", Config{MinLen: 1, MaxLen: 10, Decay: 0.5, AttemptMultiplier: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() err=%v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestNewDefaultsAttemptMultiplier(t *testing.T) {
	s := newSampler(t, Config{MinLen: 1, MaxLen: 2, Decay: 1}, nil)
	if got := s.Config().AttemptMultiplier; got != DefaultAttemptMultiplier {
		t.Fatalf("attempt multiplier %d, want %d", got, DefaultAttemptMultiplier)
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestComplementCmd(t *testing.T) {
	out, err := run(t, "", "complement", "ATG-cnn")
	if err != nil {
		t.Fatal(err)
	}
	if out != "ATGcnn\nTACgnn\n" {
		t.Errorf("complement = %q", out)
	}
	if out, err = run(t, "", "complement", "--reverse", "AAGC"); err != nil || out != "GCTT\n" {
		t.Errorf("reverse = %q, %v", out, err)
	}
}

func TestSearchCmd(t *testing.T) {
	out, err := run(t, "", "search", "AATTC", "-s", "GGAATTCGGAATTC", "--top", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var res []struct {
		Part    string `json:"part"`
		Results []struct {
			Start  int    `json:"start"`
			Strand string `json:"strand"`
		} `json:"results"`
	}
	if err = json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("%v: %s", err, out)
	}
	if len(res) != 1 || len(res[0].Results) != 2 || res[0].Results[1].Start != 9 || res[0].Results[0].Strand != "TOP" {
		t.Errorf("results = %+v", res)
	}

	out, err = run(t, "", "search", "GAATTC", "-s", "CCGAATTCCC", "--show")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "BOTTOM") || !strings.Contains(out, ">seq") {
		t.Errorf("table output = %q", out)
	}

	if _, err = run(t, "", "search", "AT", "-s", "ATATAT"); err == nil {
		t.Error("want error for a too broad query")
	}
}

func TestDigestCmd(t *testing.T) {
	out, err := run(t, ">bsa\nTTAGGTCTCGGGGGAA\n", "digest", "BsaI", "Nope", "-i", "-", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var res []struct {
		Part      string `json:"part"`
		Fragments []struct {
			Seq string `json:"seq"`
		} `json:"fragments"`
		Skipped []string `json:"skipped"`
	}
	if err = json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("%v: %s", err, out)
	}
	if len(res) != 1 || res[0].Part != "bsa" || len(res[0].Fragments) != 2 || res[0].Fragments[0].Seq != "TTAGGTCTCG" {
		t.Errorf("digest = %+v", res)
	}
	if len(res[0].Skipped) != 1 {
		t.Errorf("skipped = %v", res[0].Skipped)
	}

	out, err = run(t, "", "digest", "EcoRI", "-s", strings.Repeat("A", 600)+"GAATTC"+strings.Repeat("C", 300), "--gel", "--ladder", "100bp")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "601") || !strings.Contains(out, "Start of sequence") {
		t.Errorf("gel table = %q", out)
	}
}

func TestGelCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gel.svg")
	if _, err := run(t, "", "gel", "EcoRI", "-s", strings.Repeat("A", 1200)+"GAATTC"+strings.Repeat("C", 900), "-o", path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil || !bytes.Contains(data, []byte("<svg")) {
		t.Errorf("gel image not written: %v", err)
	}
}

func TestPrimersCmd(t *testing.T) {
	dir := t.TempDir()
	primers := filepath.Join(dir, "primers.txt")
	if err := os.WriteFile(primers, []byte("fwd TTACGACAAGCTGGCATGCC GGGG\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	vector := "ATGACCATGATTACGCCAAGCTTGCATGCCTGCAGGTCGACTCTAGAGGATCCCCGGGTACCGAGCTCGAATTCACTGGCCGTCGTTTTAC"
	out, err := run(t, "", "primers", "-p", primers, "-s", vector, "--circular")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "FORWARD") || !strings.Contains(out, "15-16,22-23") {
		t.Errorf("primers = %q", out)
	}
	if _, err = run(t, "", "primers", "-s", vector); err == nil {
		t.Error("want error without --primers")
	}
}

func TestEnzymesCmd(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "enzymes.tsv")
	if err := os.WriteFile(db, []byte("MyEnz\tCC^TT_GG\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(dir, "seqviz.yaml")
	if err := os.WriteFile(cfg, []byte("enzymes:\n  db: "+db+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "enzymes", "--config", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "EcoRI") || !strings.Contains(out, "G^AATT_C") || !strings.Contains(out, "MyEnz") {
		t.Errorf("enzymes = %q", out)
	}
	if out, err = run(t, "", "enzymes", "ecorx"); err != nil || !strings.Contains(out, "EcoRI") {
		t.Errorf("find = %q, %v", out, err)
	}
	if _, err = run(t, "", "enzymes", "qqqqqqqqqq"); err == nil {
		t.Error("want error for no similar enzyme")
	}
}

func TestStatsCmd(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "h")
	out, err := run(t, "", "stats", "-s", "GGGGCCCCAAAATTTTGGCC", "--hist", prefix)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "60.00") || !strings.Contains(out, "61.40") {
		t.Errorf("stats = %q", out)
	}
	data, err := os.ReadFile(prefix + ".gc")
	if err != nil || string(data) != "60.0\t1\n" {
		t.Errorf("gc hist = %q, %v", data, err)
	}
	if data, err = os.ReadFile(prefix + ".tm"); err != nil || string(data) != "61.4\t1\n" {
		t.Errorf("tm hist = %q, %v", data, err)
	}
}

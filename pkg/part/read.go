package part

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	bioalpha "github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/liserjrqlxue/seqviz/pkg/util"
)

// ReadFasta reads every record of a FASTA stream into parts.
func ReadFasta(in io.Reader, circular bool) ([]*Part, error) {
	var (
		parts []*Part
		r     = fasta.NewReader(in, linear.NewSeq("", nil, bioalpha.DNAredundant))
	)
	for {
		s, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return parts, fmt.Errorf("read fasta: %w", err)
		}
		ls, ok := s.(*linear.Seq)
		if !ok {
			return parts, fmt.Errorf("read fasta: unexpected sequence type %T", s)
		}
		parts = append(parts, New(ls.ID, string(bioalpha.LettersToBytes(ls.Seq)), circular))
	}
	return parts, nil
}

// ReadJSON decodes either a single part object or an array of parts.
func ReadJSON(in io.Reader) ([]*Part, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var parts []*Part
		if err := json.Unmarshal(data, &parts); err != nil {
			return nil, fmt.Errorf("decode parts: %w", err)
		}
		for i, p := range parts {
			parts[i] = p.Normalize()
		}
		return parts, nil
	}
	var p Part
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode part: %w", err)
	}
	return []*Part{p.Normalize()}, nil
}

// Load reads parts from path. JSON files keep their own circular flag;
// FASTA and raw sequence files take circular from the caller.
func Load(path string, circular bool) ([]*Part, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadJSON(f)
	case ".fa", ".fasta", ".fna", ".fas":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadFasta(f, circular)
	default:
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		return []*Part{New(name, util.LoadInputSeq(path), circular)}, nil
	}
}

package cgi

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joshyou/comp-bio/config"
	"github.com/spf13/cobra"
)

// Flags contains parsed cobra flags like "in" and "out" that are used by
// the cgi command.
type Flags struct {
	// the path of the input sequence file (FASTA or plain text)
	in string

	// the path to write results to ("" or "-" means stdout)
	out string

	// a raw sequence passed directly as a CLI argument, instead of a file
	seq string
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// Record is one input sequence after cleaning: only upper-case
// A/C/G/T bytes remain.
type Record struct {
	ID  string
	Seq []byte
}

// unwantedChars matches everything the model's alphabet excludes.
// Dropped before decoding, same as the N's and ambiguity codes a
// reference FASTA carries.
var unwantedChars = regexp.MustCompile(`(?im)[^acgt]|\W`)

// parseCmdFlags gathers the in/out paths from a cobra cmd object.
// Returns Flags and a Config struct for Find.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	var err error
	fs := &Flags{}
	c := config.New()

	if fs.in, err = cmd.Flags().GetString("in"); err != nil {
		cmd.Help()
		stderr.Fatalln(err)
	}

	if fs.in == "" {
		// a bare sequence argument works in place of an input file
		if len(args) < 1 {
			cmd.Help()
			stderr.Fatalln("\nno input file or sequence passed.")
		}
		fs.seq = args[0]
	}

	if fs.out, err = cmd.Flags().GetString("out"); err != nil {
		cmd.Help()
		stderr.Fatalln(err)
	}

	if err = c.Validate(); err != nil {
		stderr.Fatalln(err)
	}

	return fs, c
}

// records resolves the flags to the list of cleaned input sequences.
func (p inputParser) records(fs *Flags) ([]Record, error) {
	if fs.seq != "" {
		rec, err := p.clean("arg_sequence", fs.seq)
		if err != nil {
			return nil, err
		}
		return []Record{rec}, nil
	}
	return read(fs.in)
}

// read a sequence file (by its path on local FS) to a slice of Records.
// FASTA files may hold multiple records; anything else is treated as one
// plain-text sequence.
func read(path string) (records []Record, err error) {
	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %s", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file := string(dat)
	if file == "" {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidInput, path)
	}

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, "fa") ||
		strings.HasSuffix(lower, "fasta") ||
		file[0] == '>' {
		return readFasta(path, file)
	}

	rec, err := inputParser{}.clean(rootName(path), file)
	if err != nil {
		return nil, err
	}
	return []Record{rec}, nil
}

// readFasta parses a multifasta file to cleaned records.
func readFasta(path, contents string) (records []Record, err error) {
	lines := strings.Split(contents, "\n")

	var headerIndices []int
	var ids []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			if fields := strings.Fields(line[1:]); len(fields) > 0 {
				ids = append(ids, fields[0])
			} else {
				ids = append(ids, fmt.Sprintf("record_%d", len(ids)+1))
			}
		}
	}

	if len(headerIndices) < 1 {
		return nil, fmt.Errorf("failed to parse record(s) from %s", path)
	}

	// accumulate the sequences from between the headers
	p := inputParser{}
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqLines := lines[headerIndex+1 : nextLine]

		rec, err := p.clean(ids[i], strings.Join(seqLines, ""))
		if err != nil {
			return nil, fmt.Errorf("%w in %s", err, path)
		}
		records = append(records, rec)
	}

	return records, nil
}

// clean strips every byte outside the A/C/G/T alphabet and upper-cases
// the rest. An empty result is an error: there is nothing to decode.
func (inputParser) clean(id, seq string) (Record, error) {
	cleaned := unwantedChars.ReplaceAllString(seq, "")
	cleaned = strings.ToUpper(cleaned)
	if cleaned == "" {
		return Record{}, fmt.Errorf("%w: no A/C/G/T bases in %s", ErrInvalidInput, id)
	}
	return Record{ID: id, Seq: []byte(cleaned)}, nil
}

// rootName is the file's name without its directory or extension.
func rootName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Command wsvcat reads WSV files (or standard input) and prints each record.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/shapestone/shape-wsv/internal/config"
	"github.com/shapestone/shape-wsv/pkg/wsv"
)

var (
	configPath = kingpin.Flag("config", "Path to a TOML config file.").String()
	jsonOut    = kingpin.Flag("json", "Print records as JSON objects, one per line.").Action(markSet(&flagsGiven.json)).Bool()
	unordered  = kingpin.Flag("unordered", "Use plain map records (column order not preserved).").Action(markSet(&flagsGiven.unordered)).Bool()
	comment    = kingpin.Flag("comment", "Comment character, empty to disable comment filtering.").Default("#").Action(markSet(&flagsGiven.comment)).String()
	files      = kingpin.Arg("files", "WSV files to read; standard input when none are given.").ExistingFiles()

	flagsGiven struct{ json, unordered, comment bool }
)

// markSet records that a flag appeared on the command line, so it overrides
// the config file even when its value matches the flag default.
func markSet(given *bool) func(*kingpin.ParseContext) error {
	return func(*kingpin.ParseContext) error {
		*given = true
		return nil
	}
}

// overrides holds flag values that were given explicitly on the command line.
type overrides struct {
	json, jsonSet           bool
	unordered, unorderedSet bool
	comment                 string
	commentSet              bool
}

// apply overlays explicitly given flags onto the loaded config.
func (o overrides) apply(cfg config.Config) config.Config {
	if o.jsonSet {
		cfg.JSON = o.json
	}
	if o.unorderedSet {
		cfg.Unordered = o.unordered
	}
	if o.commentSet {
		cfg.Comment = o.comment
	}
	return cfg
}

func main() {
	kingpin.Parse()

	cfg, err := config.Load(*configPath)
	kingpin.FatalIfError(err, "")

	cfg = overrides{
		json: *jsonOut, jsonSet: flagsGiven.json,
		unordered: *unordered, unorderedSet: flagsGiven.unordered,
		comment: *comment, commentSet: flagsGiven.comment,
	}.apply(cfg)

	commentRune, err := cfg.CommentRune()
	kingpin.FatalIfError(err, "")

	opts := wsv.DefaultOptions()
	opts.Comment = commentRune
	opts.ExtraPrefix = cfg.ExtraPrefix
	opts.NewRecord = wsv.NewOrderedRecord
	if cfg.Unordered {
		opts.NewRecord = wsv.NewMapRecord
	}
	kingpin.FatalIfError(opts.Validate(), "")

	if len(*files) == 0 {
		dump(os.Stdin, "-", opts, cfg.JSON)
		return
	}

	for i, name := range *files {
		f, err := os.Open(name)
		kingpin.FatalIfError(err, "")
		if len(*files) > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("==> %s\n", name)
		}
		dump(f, name, opts, cfg.JSON)
		f.Close()
	}
}

// dump parses one input and prints every record.
func dump(r io.Reader, name string, opts wsv.Options, asJSON bool) {
	sc := wsv.NewScannerWithOptions(r, opts)
	for sc.Scan() {
		printRecord(sc.Record(), asJSON)
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("%s: %v", name, err)
	}
}

// printRecord writes a single record to standard output.
func printRecord(rec wsv.Record, asJSON bool) {
	if asJSON {
		data, err := json.Marshal(rec)
		if err != nil {
			log.Fatalf("encoding record: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	parts := make([]string, 0, rec.Len())
	for _, col := range rec.Columns() {
		value, _ := rec.Get(col)
		parts = append(parts, fmt.Sprintf("%s=%q", col, value))
	}
	fmt.Println(strings.Join(parts, " "))
}

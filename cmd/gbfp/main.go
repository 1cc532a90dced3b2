package main

import (
	"os"
	"runtime"

	"github.com/alecthomas/kingpin"
	"github.com/charmbracelet/log"
	"github.com/mingzhi/genbank"
)

var (
	app    = kingpin.New("gbfp", "A command-line application for reading GenBank flat files.")
	debug  = app.Flag("debug", "Enable debug mode.").Envar("GBFP_DEBUG").Bool()
	ncpu   = app.Flag("ncpu", "number of CPUs for using.").Default("0").Int()
	policy = app.Flag("policy", "what to do after an invalid LOCUS line: stop or skip.").Default("stop").Enum("stop", "skip")

	indexApp     = app.Command("index", "load records into a db.")
	indexFile    = indexApp.Arg("genbank_file", "GenBank file, - for stdin.").Required().String()
	indexDB      = indexApp.Arg("db_path", "db path").Required().String()
	indexBackend = indexApp.Flag("backend", "db backend.").Default("bolt").Enum("bolt", "lmdb")

	extractApp       = app.Command("extract", "print feature sequences as FASTA.")
	extractFile      = extractApp.Arg("genbank_file", "GenBank file, - for stdin.").Required().String()
	extractType      = extractApp.Flag("type", "feature type").Default("CDS").String()
	extractQualifier = extractApp.Flag("qualifier", "qualifier used as sequence name").Default("locus_tag").String()

	reportApp  = app.Command("report", "report record statistics.")
	reportFile = reportApp.Arg("genbank_file", "GenBank file, - for stdin.").Required().String()

	showApp       = app.Command("show", "show a stored record.")
	showDB        = showApp.Arg("db_path", "db path").Required().String()
	showAccession = showApp.Arg("accession", "accession").Required().String()
	showBackend   = showApp.Flag("backend", "db backend.").Default("bolt").Enum("bolt", "lmdb")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	runtime.GOMAXPROCS(*ncpu)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	switch command {
	case indexApp.FullCommand():
		indexcmd := cmdIndex{
			gbFile:  *indexFile,
			dbPath:  *indexDB,
			backend: *indexBackend,
		}
		indexcmd.run()
	case extractApp.FullCommand():
		extractcmd := cmdExtract{
			gbFile:    *extractFile,
			key:       *extractType,
			qualifier: *extractQualifier,
			out:       os.Stdout,
		}
		extractcmd.run()
	case reportApp.FullCommand():
		reportcmd := cmdReport{
			gbFile: *reportFile,
			ncpu:   runtime.GOMAXPROCS(0),
			out:    os.Stdout,
		}
		reportcmd.run()
	case showApp.FullCommand():
		showcmd := cmdShow{
			dbPath:    *showDB,
			accession: *showAccession,
			backend:   *showBackend,
			out:       os.Stdout,
		}
		showcmd.run()
	}
}

func readerOptions() []genbank.Option {
	p := genbank.StopOnMalformed
	if *policy == "skip" {
		p = genbank.SkipMalformed
	}
	return []genbank.Option{genbank.WithPolicy(p), genbank.WithLogger(log.Default())}
}

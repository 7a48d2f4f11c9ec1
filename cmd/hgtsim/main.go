package main

// Simulate horizontal gene transfer by combining genes from two genomes.
//
// The donor and recipient genomes are given either as artificial genomes
// (one-line nucleotide file plus a whitespace-delimited annotation file of
// strand/start/end triples) or as a FASTA sequence plus a pre-extracted
// JSON gene catalog. Orthologous genes are determined with OrthoFinder.
// The outputs are the simulated genomes in protein and raw nucleotide FASTA
// formats and a log file of the simulated HGTs.

import (
	"log"
	"math/rand"
	"os"

	"github.com/mingzhi/hgtsim/genome"
	"github.com/mingzhi/hgtsim/ortho"
	"github.com/mingzhi/hgtsim/sim"
	"github.com/spf13/viper"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	INFO *log.Logger
	WARN *log.Logger
)

func main() {
	app := kingpin.New("hgtsim", "Simulate horizontal gene transfers between a donor and a recipient genome")
	app.Version("v0.1")
	donorFile := app.Flag("donor-fp", "donor genome file (artificial genome or FASTA)").Required().String()
	donorAnnotFile := app.Flag("donor-annotation-fp", "donor annotation file (artificial) or JSON gene catalog").Required().String()
	recipFile := app.Flag("recipient-fp", "recipient genome file (artificial genome or FASTA)").Required().String()
	recipAnnotFile := app.Flag("recipient-annotation-fp", "recipient annotation file (artificial) or JSON gene catalog").Required().String()
	outDir := app.Flag("output-dir", "output directory").Required().String()
	simType := app.Flag("simulation-type", "genome input format").Default("artificial").Enum("artificial", "catalog")
	pctHGTs := app.Flag("percentage-hgts", "fraction of recipient genes to affect").Default("0.05").Float64()
	repProb := app.Flag("orthologous-rep-prob", "probability of orthologous replacement HGT (the remainder are novel gene acquisitions)").Default("0.5").Float64()
	threads := app.Flag("threads", "number of threads for the clustering tool").Default("1").Int()
	seed := app.Flag("seed", "random seed").Default("1").Int64()
	config := app.Flag("config", "optional YAML configure file name, looked up in the working directory").Default("").String()
	verbose := app.Flag("verbose", "run in verbose mode").Default("false").Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	registerLoggers()

	if *config != "" {
		viper.SetConfigName(*config)
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalln(err)
		}
		if viper.IsSet("Percentage_HGTs") {
			*pctHGTs = viper.GetFloat64("Percentage_HGTs")
		}
		if viper.IsSet("Orthologous_Rep_Prob") {
			*repProb = viper.GetFloat64("Orthologous_Rep_Prob")
		}
		if viper.IsSet("Threads") {
			*threads = viper.GetInt("Threads")
		}
	}
	if *pctHGTs <= 0 || *repProb < 0 || *repProb > 1 {
		log.Fatalf("invalid parameters: percentage-hgts %g, orthologous-rep-prob %g\n", *pctHGTs, *repProb)
	}

	donor, recip := loadGenomes(*simType, *donorFile, *donorAnnotFile, *recipFile, *recipAnnotFile)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalln(err)
	}

	d := sim.Driver{
		Donor:     donor,
		Recip:     recip,
		Clusterer: ortho.OrthoFinder{},
		Params: sim.Params{
			PercentageHGTs:     *pctHGTs,
			OrthologousRepProb: *repProb,
			Threads:            *threads,
			Verbose:            *verbose,
		},
		RNG: rand.New(rand.NewSource(*seed)),
	}
	events, err := d.Run(*outDir)
	if err != nil {
		log.Fatalln(err)
	}
	INFO.Printf("done; %d HGTs written to %s\n", len(events), *outDir)
}

func loadGenomes(simType, donorFile, donorAnnotFile, recipFile, recipAnnotFile string) (donor, recip *genome.Genome) {
	var err error
	switch simType {
	case "artificial":
		donor, err = genome.ExtractArtificial(donorFile, donorAnnotFile, "donor")
		if err != nil {
			log.Fatalln(err)
		}
		recip, err = genome.ExtractArtificial(recipFile, recipAnnotFile, "recip")
		if err != nil {
			log.Fatalln(err)
		}
	case "catalog":
		donor, err = genome.LoadGenome(donorFile, donorAnnotFile, "donor")
		if err != nil {
			log.Fatalln(err)
		}
		recip, err = genome.LoadGenome(recipFile, recipAnnotFile, "recip")
		if err != nil {
			log.Fatalln(err)
		}
	}

	return
}

func registerLoggers() {
	INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WARN = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	sim.Info = INFO
	sim.Warn = WARN
}

package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/TuftsBCB/ssfrag/backbone"
)

var (
	FlagCpu     = runtime.NumCPU()
	FlagVerbose = false

	FlagWindow  = backbone.DefaultWindow
	FlagNoMerge = false

	// FlagChain and FlagModel restrict the chains processed. The empty
	// chain and model 0 mean every chain and every model.
	FlagChain = ""
	FlagModel = 0
)

// Environment variables that override the defaults of -cpu and -verbose.
// They may also be set in a '.env' file in the working directory.
const (
	EnvCpu     = "SSFRAG_CPU"
	EnvVerbose = "SSFRAG_VERBOSE"
)

func init() {
	log.SetFlags(0)

	// A missing .env file is not an error.
	_ = godotenv.Load()
	if s := os.Getenv(EnvCpu); len(s) > 0 {
		n, err := strconv.Atoi(s)
		Assert(err, "Invalid value for %s", EnvCpu)
		FlagCpu = n
	}
	if s := os.Getenv(EnvVerbose); len(s) > 0 {
		b, err := strconv.ParseBool(s)
		Assert(err, "Invalid value for %s", EnvVerbose)
		FlagVerbose = b
	}
}

type commonFlag struct {
	set, init func()
	use       bool
}

var commonFlags = map[string]*commonFlag{
	"cpu": {
		set: func() {
			flag.IntVar(&FlagCpu, "cpu", FlagCpu,
				"The max number of CPUs to use.")
		},
		init: func() {
			if FlagCpu < 1 {
				Fatalf("The number of CPUs must be at least 1, but %d was "+
					"given.", FlagCpu)
			}
			runtime.GOMAXPROCS(FlagCpu)
		},
	},
	"verbose": {
		set: func() {
			flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
				"When set, progress is reported to stderr.")
		},
	},
	"window": {
		set: func() {
			flag.IntVar(&FlagWindow, "window", FlagWindow,
				"The number of residues averaged for each characteristic\n"+
					"value.")
		},
		init: func() {
			if FlagWindow < 1 {
				Fatalf("The window size must be at least 1, but %d was "+
					"given.", FlagWindow)
			}
		},
	},
	"no-merge": {
		set: func() {
			flag.BoolVar(&FlagNoMerge, "no-merge", FlagNoMerge,
				"When set, adjacent parallel fragments are not merged.")
		},
	},
	"chain": {
		set: func() {
			flag.StringVar(&FlagChain, "chain", FlagChain,
				"When set, only chains with this identifier are used.")
		},
		init: func() {
			if len(FlagChain) > 1 {
				Fatalf("A chain identifier is a single character, but "+
					"'%s' was given.", FlagChain)
			}
		},
	},
	"model": {
		set: func() {
			flag.IntVar(&FlagModel, "model", FlagModel,
				"When set, only models with this number are used.")
		},
	},
}

func FlagUse(names ...string) {
	for _, name := range names {
		commonFlags[name].use = true
	}
}

// Usage just calls `flag.Usage`. It's included here to avoid
// an extra import to `flag` just to call Usage.
func Usage() {
	flag.Usage()
}

// Arg just calls `flag.Arg`. It's included here to avoid
// an extra import to `flag` just to call Arg.
func Arg(i int) string {
	return flag.Arg(i)
}

// Args just calls `flag.Args`.
func Args() []string {
	return flag.Args()
}

// NArg just calls `flag.NArg`. It's included here to avoid
// an extra import to `flag` just to call NArg.
func NArg() int {
	return flag.NArg()
}

// Selected returns true if a chain with the given identifier and model
// number passes the -chain and -model filters.
func Selected(ident byte, model int) bool {
	if len(FlagChain) == 1 && FlagChain[0] != ident {
		return false
	}
	return FlagModel == 0 || FlagModel == model
}

func FlagParse(positional string, desc string) {
	for _, fl := range commonFlags {
		if fl.use {
			fl.set()
		}
	}

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()

	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}

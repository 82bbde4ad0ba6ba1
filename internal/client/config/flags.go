package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/justdoit/internal/flagx"
)

// parseFlags overlays selected Config fields from command-line flags.
//
// Supported flags:
//
//	-e string   endpoint base URL
//	-k string   public service key
//	-u string   confirmation/recovery redirect URL
//
// Args are filtered first so this flag set does not collide with flags owned
// by other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-k", "-u"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.EndpointURL, "e", cfg.EndpointURL, "remote data service endpoint URL")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "public service key")
	fs.StringVar(&cfg.RedirectURL, "u", cfg.RedirectURL, "confirmation redirect URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

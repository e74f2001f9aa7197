// Command hashtable is a small line oriented shell over an open
// addressing hash table with integer keys and string values.
//
//	put <key> <value>   insert or update, prints the previous value
//	get <key>           prints the value
//	has <key>           prints true or false
//	del <key>           removes the key, prints the removed value
//	keys | values       prints live keys or values in slot order
//	len | cap           prints the live count or the capacity
//	dump                prints every entry with its slot index
//	clear               removes every entry
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/scottcagno/collections/pkg/hashkey"
	"github.com/scottcagno/collections/pkg/hashmap/openaddr"
)

func main() {
	conf, err := loadConfig(os.Args[1:])
	if err != nil {
		initLogger(os.Stderr, "info")
		log.Fatal().Err(err).Msg("loading configuration")
	}
	initLogger(os.Stderr, conf.LogLevel)

	fn, _ := hashkey.Lookup(conf.Hash)
	tconf := openaddr.DefaultConfig()
	tconf.Capacity = conf.Capacity
	tconf.LoadFactor = conf.LoadFactor
	tconf.Logger = &log.Logger
	table, err := openaddr.NewTable[string](tconf)
	if err != nil {
		log.Fatal().Err(err).Msg("creating table")
	}
	log.Info().
		Int("capacity", table.Cap()).
		Float64("load_factor", conf.LoadFactor).
		Str("hash", conf.Hash).
		Msg("table ready")

	sh := &shell{table: table, hash: fn, out: os.Stdout, log: log.Logger}
	if err := sh.run(os.Stdin); err != nil {
		log.Fatal().Err(err).Msg("reading input")
	}
}

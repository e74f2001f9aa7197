package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/scottcagno/collections/pkg/hashkey"
	"github.com/scottcagno/collections/pkg/hashmap/openaddr"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("wrong number of arguments")
)

type shell struct {
	table *openaddr.Table[string]
	hash  hashkey.Func
	out   io.Writer
	log   zerolog.Logger
}

// run executes one command per line until r is exhausted. Command errors
// are logged and do not stop the shell.
func (sh *shell) run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := sh.exec(strings.Fields(line)); err != nil {
			sh.log.Error().Err(err).Str("line", line).Msg("command failed")
		}
	}
	return sc.Err()
}

func (sh *shell) key(arg string) (hashkey.Key, error) {
	raw, err := strconv.Atoi(arg)
	if err != nil {
		return hashkey.Key{}, fmt.Errorf("bad key %q: %w", arg, err)
	}
	return hashkey.NewWith(raw, sh.hash), nil
}

func (sh *shell) exec(args []string) error {
	cmd, args := strings.ToLower(args[0]), args[1:]
	want := map[string]int{
		"put": 2, "get": 1, "has": 1, "del": 1,
		"keys": 0, "values": 0, "len": 0, "cap": 0, "dump": 0, "clear": 0,
	}
	n, ok := want[cmd]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
	if cmd == "put" && len(args) >= 2 {
		// values may contain spaces
		args = []string{args[0], strings.Join(args[1:], " ")}
	}
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d", errUsage, cmd, n)
	}
	switch cmd {
	case "keys":
		keys := sh.table.Keys()
		raw := make([]string, len(keys))
		for i := range keys {
			raw[i] = keys[i].String()
		}
		fmt.Fprintln(sh.out, strings.Join(raw, " "))
		return nil
	case "values":
		fmt.Fprintln(sh.out, strings.Join(sh.table.Values(), " "))
		return nil
	case "len":
		fmt.Fprintln(sh.out, sh.table.Len())
		return nil
	case "cap":
		fmt.Fprintln(sh.out, sh.table.Cap())
		return nil
	case "dump":
		fmt.Fprintln(sh.out, sh.table)
		return nil
	case "clear":
		sh.table.Clear()
		return nil
	}
	key, err := sh.key(args[0])
	if err != nil {
		return err
	}
	switch cmd {
	case "put":
		prev, ok, err := sh.table.Put(key, args[1])
		if err != nil {
			return err
		}
		sh.print(prev, ok)
	case "get":
		sh.print(sh.table.Get(key))
	case "has":
		fmt.Fprintln(sh.out, sh.table.HasKey(key))
	case "del":
		sh.print(sh.table.Remove(key))
	}
	return nil
}

func (sh *shell) print(val string, ok bool) {
	if !ok {
		fmt.Fprintln(sh.out, "<nil>")
		return
	}
	fmt.Fprintln(sh.out, val)
}

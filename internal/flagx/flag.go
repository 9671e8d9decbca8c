// Package flagx helps several components share one command line: each
// component picks out only the flags it owns and parses them with its own
// flag.FlagSet.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps the arguments in args whose flag name is listed in
// allowedFlags, together with their values. Two shapes are recognised:
//
//	-a :3000        flag and value as separate arguments
//	--config=x.yml  flag and value joined with '='
//
// A separate value is only taken when the next argument does not itself start
// with '-'. The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	owned := make(map[string]bool, len(allowedFlags))
	for _, name := range allowedFlags {
		owned[name] = true
	}

	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, joined := strings.Cut(arg, "="); joined {
			if owned[name] {
				out = append(out, arg)
			}
			continue
		}

		if !owned[arg] {
			continue
		}
		out = append(out, arg)

		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			out = append(out, args[next])
			i = next
		}
	}

	return out
}

// ConfigFileFlag returns the config file path given with -c or -config, or an
// empty string when neither is present. When both appear the last one wins.
func ConfigFileFlag() string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file (json or yaml)")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config"}))

	return path
}

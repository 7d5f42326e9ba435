// Package flagx lets independent config stages each parse only the
// command-line flags they own.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the flags named in allowedFlags, together with
// their values. Both "-f value" and "-f=value" forms are recognized; a
// following argument that starts with "-" is never taken as a value.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFiles holds the optional file paths given on the command line.
type ConfigFiles struct {
	JSON string // -c / -config
	Env  string // -e / -env
}

// ConfigFileFlags extracts the config file paths from os.Args without
// touching any other flag.
func ConfigFileFlags() ConfigFiles {
	return parseConfigFileFlags(os.Args[1:])
}

func parseConfigFileFlags(args []string) ConfigFiles {
	var files ConfigFiles

	args = FilterArgs(args, []string{"-c", "-config", "-e", "-env"})

	fs := flag.NewFlagSet("files", flag.ContinueOnError)
	fs.StringVar(&files.JSON, "config", "", "Path to JSON config file")
	fs.StringVar(&files.JSON, "c", "", "Path to JSON config file (short)")
	fs.StringVar(&files.Env, "env", "", "Path to .env file")
	fs.StringVar(&files.Env, "e", "", "Path to .env file (short)")
	_ = fs.Parse(args)

	return files
}

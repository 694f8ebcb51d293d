package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// builtinCommands are added by cobra during Execute, so they are not yet in
// Commands() when args are normalised.
var builtinCommands = map[string]bool{
	"help":             true,
	"completion":       true,
	"__complete":       true,
	"__completeNoDesc": true,
}

// normalizeArgs rewrites args as "<flags> -- <positionals>" for the root
// command. A token such as "-5" or "-" is a positional unless its first
// character is a registered shorthand. Args for subcommands, or args that
// already contain "--", are returned unchanged.
func normalizeArgs(root *cobra.Command, args []string) []string {
	if len(args) == 0 || isSubcommand(root, args[0]) {
		return args
	}
	root.InitDefaultHelpFlag()
	root.InitDefaultVersionFlag()
	for _, a := range args {
		if a == "--" {
			return args
		}
	}

	flags := make([]string, 0, len(args))
	positionals := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		tok := args[i]
		switch {
		case strings.HasPrefix(tok, "--"):
			flags = append(flags, tok)
			name, _, hasValue := strings.Cut(tok[2:], "=")
			if !hasValue && takesValue(lookupLong(root, name)) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		case len(tok) > 1 && tok[0] == '-' && lookupShort(root, tok[1:2]) != nil:
			flags = append(flags, tok)
			if shorthandNeedsNext(root, tok[1:]) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positionals = append(positionals, tok)
		}
	}
	if len(positionals) == 0 {
		return flags
	}
	out := append(flags, "--")
	return append(out, positionals...)
}

func isSubcommand(root *cobra.Command, name string) bool {
	if builtinCommands[name] {
		return true
	}
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

// shorthandNeedsNext reports whether a shorthand cluster such as "qw" ends
// in a flag whose value is the next token.
func shorthandNeedsNext(root *cobra.Command, cluster string) bool {
	for i := 0; i < len(cluster); i++ {
		f := lookupShort(root, cluster[i:i+1])
		if f == nil {
			return false
		}
		if takesValue(f) {
			return i == len(cluster)-1
		}
	}
	return false
}

func lookupLong(root *cobra.Command, name string) *pflag.Flag {
	if f := root.Flags().Lookup(name); f != nil {
		return f
	}
	return root.PersistentFlags().Lookup(name)
}

func lookupShort(root *cobra.Command, short string) *pflag.Flag {
	if f := root.Flags().ShorthandLookup(short); f != nil {
		return f
	}
	return root.PersistentFlags().ShorthandLookup(short)
}

func takesValue(f *pflag.Flag) bool {
	return f != nil && f.NoOptDefVal == ""
}

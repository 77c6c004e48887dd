// Command namejar-draw prints a batch of generated names
//
//	namejar-draw [area] [num]
//	namejar-draw -w -f jp 3
//	namejar-draw -l -target en jp
//	namejar-draw jp 3 -w
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"namejar/internal/adapters/translate"
	"namejar/internal/core/corpus"
	"namejar/internal/platform/config"
	"namejar/internal/platform/logger"
	"namejar/internal/services/names/domain"
	namessvc "namejar/internal/services/names/service"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// gender applies the flag precedence ta > female > male
func gender(male, female, ta bool) string {
	switch {
	case ta:
		return "ta"
	case female:
		return "female"
	case male:
		return "male"
	}
	return ""
}

// positional reads [area] [num] in either order, an integer is the count
func positional(args []string) (area string, num *int, err error) {
	for _, a := range args {
		if n, convErr := strconv.Atoi(a); convErr == nil {
			if num != nil {
				return "", nil, fmt.Errorf("count given twice: %q", a)
			}
			num = &n
			continue
		}
		if area != "" {
			return "", nil, fmt.Errorf("unexpected argument %q", a)
		}
		area = a
	}
	return area, num, nil
}

// interleaved parses argv allowing flags after positionals, as in "jp 3 -w"
// Everything after "--" is positional
func interleaved(fs *flag.FlagSet, argv []string) ([]string, error) {
	var pos []string
	for {
		if err := fs.Parse(argv); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return pos, nil
		}
		if len(argv) > len(rest) && argv[len(argv)-len(rest)-1] == "--" {
			return append(pos, rest...), nil
		}
		pos = append(pos, rest[0])
		argv = rest[1:]
	}
}

// envTarget derives a translation target from LANG style values like ja_JP.UTF-8
func envTarget() string {
	for _, k := range []string{"LC_ALL", "LANG"} {
		v := os.Getenv(k)
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return ""
}

func main() {
	var (
		weights = flag.Bool("w", false, "weighted surnames")
		male    = flag.Bool("m", false, "male given names")
		female  = flag.Bool("f", false, "female given names")
		ta      = flag.Bool("t", false, "gender neutral given names")
		tr      = flag.Bool("l", false, "annotate each name with a translation")
		target  = flag.String("target", "", "translation target, defaults to $LANG")
		seed    = flag.Uint64("seed", 0, "reproducible draw when non-zero")
		dir     = flag.String("corpus", "", "corpus directory, embedded pack when empty")
	)
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [area] [num] [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	args, err := interleaved(flag.CommandLine, os.Args[1:])
	must(err)

	if err := config.LoadDotEnv(); err != nil {
		logger.Get().Warn().Err(err).Msg("failed to read .env")
	}
	root := config.New()

	area, num, err := positional(args)
	must(err)

	var pack *corpus.Pack
	if *dir != "" {
		pack, err = corpus.LoadDir(*dir)
	} else {
		pack, err = corpus.Load()
	}
	must(err)

	var opts []namessvc.Option
	if to := translate.FromConfig(root.Prefix("CORE_TRANSLATE_")); *tr && to.Enabled() {
		opts = append(opts, namessvc.WithTranslator(translate.NewClient(to)))
	}
	svc := namessvc.New(pack, namessvc.FromConfig(root.Prefix("CORE_NAMES_")), opts...)
	if *tr && !svc.TranslatorEnabled() {
		_, _ = fmt.Fprintln(os.Stderr, "warning: -l needs CORE_TRANSLATE_URL, printing names only")
	}

	in := domain.DrawInput{
		Locale:    area,
		Count:     num,
		Gender:    gender(*male, *female, *ta),
		Translate: *tr,
	}
	if *weights {
		in.Weights = weights
	}
	if *seed != 0 {
		in.Seed = seed
	}
	if in.Translate {
		in.Target = strings.TrimSpace(*target)
		if in.Target == "" {
			in.Target = envTarget()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := svc.Draw(ctx, in)
	must(err)

	for _, t := range res.Translations {
		if t.Error != "" {
			_, _ = fmt.Fprintf(os.Stderr, "warning: %s: %s\n", t.Original, t.Error)
		}
	}
	_, _ = fmt.Fprintln(os.Stdout, res.Text)
}

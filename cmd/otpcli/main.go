// Command otpcli generates and validates one-time passwords from the
// command line, either from a secret given directly or from a named
// account in a YAML keychain file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jeremyhahn/go-otp/pkg/otp"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "generate":
		runGenerate(os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	case "secret":
		runSecret()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Println("Usage: otpcli <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate   Print a one-time code for a secret or keychain account")
	fmt.Println("  validate   Check a submitted code; prints the matched counter on success")
	fmt.Println("  secret     Print a freshly generated base32 secret")
	fmt.Println()
	fmt.Println("Secrets come from --secret, or from --keychain <file> --account <name>.")
	fmt.Println("Keychain files are YAML; secrets in them are never echoed.")
}

// commonFlags are shared between generate and validate.
type commonFlags struct {
	secret    string
	keychain  string
	account   string
	digits    uint
	period    int
	algorithm string
	hotp      bool
	counter   uint64
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVar(&f.secret, "secret", "", "base32 secret")
	fs.StringVar(&f.keychain, "keychain", "", "path to YAML keychain file")
	fs.StringVar(&f.account, "account", "", "account name within the keychain")
	fs.UintVar(&f.digits, "digits", 0, "code length (default 6)")
	fs.IntVar(&f.period, "period", 0, "TOTP step in seconds (default 30)")
	fs.StringVar(&f.algorithm, "algorithm", "", "SHA1, SHA256, or SHA512 (default SHA1)")
	fs.BoolVar(&f.hotp, "hotp", false, "counter-based instead of time-based")
	fs.Uint64Var(&f.counter, "counter", 0, "HOTP counter")
}

// resolve merges flag values with the keychain entry, flags winning.
func (f *commonFlags) resolve() (string, otp.TOTPOptions, bool, error) {
	secret := f.secret
	isHOTP := f.hotp
	opts := otp.TOTPOptions{
		Digits:    f.digits,
		Period:    f.period,
		Algorithm: otp.Algorithm(f.algorithm),
	}

	if f.keychain != "" {
		kc, err := loadKeychain(f.keychain)
		if err != nil {
			return "", opts, false, err
		}
		entry, err := kc.lookup(f.account)
		if err != nil {
			return "", opts, false, err
		}
		if secret == "" {
			secret = entry.Secret
		}
		if opts.Digits == 0 {
			opts.Digits = entry.Digits
		}
		if opts.Period == 0 {
			opts.Period = entry.Period
		}
		if opts.Algorithm == "" {
			opts.Algorithm = otp.Algorithm(entry.Algorithm)
		}
		if !isHOTP {
			isHOTP = entry.Type == "hotp"
		}
	}

	if secret == "" {
		return "", opts, false, errors.New("no secret: pass --secret or --keychain with --account")
	}
	return secret, opts, isHOTP, nil
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var f commonFlags
	addCommonFlags(fs, &f)
	fs.Parse(args)

	secret, opts, isHOTP, err := f.resolve()
	if err != nil {
		fatal(err)
	}
	key, err := otp.DecodeSecret(secret)
	if err != nil {
		fatal(err)
	}

	var code string
	if isHOTP {
		code, err = otp.GenerateHOTP(key, f.counter, otp.HOTPOptions{Digits: opts.Digits, Algorithm: opts.Algorithm})
	} else {
		code, err = otp.GenerateTOTP(key, time.Now(), opts)
	}
	if err != nil {
		fatal(err)
	}
	fmt.Println(code)
}

func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var f commonFlags
	addCommonFlags(fs, &f)
	code := fs.String("code", "", "submitted code to check")
	last := fs.Int64("last", -1, "highest HOTP counter already accepted (-1 for none)")
	window := fs.Uint("window", 1, "HOTP counters to probe past last")
	skew := fs.Uint("skew", 0, "adjacent TOTP steps to accept")
	fs.Parse(args)

	if *code == "" {
		fatal(errors.New("missing --code"))
	}
	secret, opts, isHOTP, err := f.resolve()
	if err != nil {
		fatal(err)
	}
	key, err := otp.DecodeSecret(secret)
	if err != nil {
		fatal(err)
	}

	var counter uint64
	var ok bool
	if isHOTP {
		counter, ok, err = otp.ValidateHOTP(*code, key, *last, otp.HOTPOptions{
			Digits:    opts.Digits,
			Algorithm: opts.Algorithm,
			Window:    *window,
		})
	} else {
		opts.Skew = *skew
		counter, ok, err = otp.ValidateTOTP(*code, key, time.Now(), opts)
	}
	if err != nil {
		fatal(err)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "invalid code")
		os.Exit(1)
	}
	fmt.Println(counter)
}

func runSecret() {
	secret, err := otp.GenerateSecret()
	if err != nil {
		fatal(err)
	}
	fmt.Println(secret)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "otpcli:", err)
	os.Exit(1)
}

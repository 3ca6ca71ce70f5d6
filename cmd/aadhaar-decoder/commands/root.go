package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"aadhaarqr/internal/app"
	"aadhaarqr/internal/domain"
	"aadhaarqr/internal/render"
)

const (
	name    = "aadhaar-decoder"
	version = "1.0.0"
	usage   = "Usage: " + name + " <qr_data>"
)

// errUsage marks invocation errors; they exit 1.
var errUsage = errors.New("invalid invocation")

type options struct {
	cfg          app.Config
	verifyEmail  string
	verifyMobile string

	wire *app.Wire // set once flags are parsed
}

// decode runs payload through the wired service and writes the result.
func (o *options) decode(w io.Writer, payload string) error {
	res := o.wire.Decode.Decode(payload, domain.VerifyRequest{
		Email:  o.verifyEmail,
		Mobile: o.verifyMobile,
	})
	return o.wire.Renderer.Render(w, res)
}

// logger returns the wired logger, or a fresh one when wiring never happened.
func (o *options) logger(stderr io.Writer) *logrus.Logger {
	if o.wire != nil {
		return o.wire.Log
	}
	log, err := app.NewLogger(stderr, o.cfg.LogLevel)
	if err != nil {
		log, _ = app.NewLogger(stderr, "")
	}
	return log
}

func rootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           name + " <qr_data>",
		Short:         "Decode an Aadhaar QR payload and print the result as JSON",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: want 1 argument, got %d", errUsage, len(args))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(opts.cfg)
			if err != nil {
				return fmt.Errorf("%w: %v", errUsage, err)
			}
			opts.wire = w
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.decode(cmd.OutOrStdout(), args[0])
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	formats := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		formats[i] = string(f)
	}

	fl := root.Flags()
	fl.BoolVar(&opts.cfg.Pretty, "pretty", false, "indent JSON output")
	fl.StringVar(&opts.cfg.Format, "format", string(render.FormatJSON), "output format ("+strings.Join(formats, "|")+")")
	fl.BoolVar(&opts.cfg.NoColor, "no-color", false, "disable colour in table output")
	fl.StringVar(&opts.cfg.LogLevel, "log-level", "warn", "log level for stderr diagnostics (debug, info, warn, error)")
	fl.StringVar(&opts.verifyEmail, "verify-email", "", "check an email address against a secure QR payload")
	fl.StringVar(&opts.verifyMobile, "verify-mobile", "", "check a mobile number against a secure QR payload")
	return root
}

// Execute runs the CLI with args (excluding the program name) and returns the
// process exit status.
//
// A lone argument is always the payload, even when it looks like a flag
// ("-123", "-h", "--version"), so it never reaches the flag parser.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &options{cfg: app.Config{LogOut: stderr}}

	var err error
	if len(args) == 1 {
		err = runPayload(opts, args[0], stdout)
	} else {
		root := rootCmd(opts)
		root.SetArgs(args)
		root.SetOut(stdout)
		root.SetErr(stderr)
		err = root.Execute()
	}
	if err == nil {
		return 0
	}

	log := opts.logger(stderr)
	if !errors.Is(err, errUsage) {
		log.WithError(err).Error("writing result")
		return 1
	}

	log.WithError(err).Debug("rejected invocation")
	r := render.Renderer{Format: render.FormatJSON, Pretty: opts.cfg.Pretty}
	if werr := r.Render(stdout, domain.UsageErrorResult(usage)); werr != nil {
		log.WithError(werr).Error("writing usage error")
	}
	return 1
}

// runPayload decodes payload with default options.
func runPayload(opts *options, payload string, stdout io.Writer) error {
	w, err := app.NewWire(opts.cfg)
	if err != nil {
		return err
	}
	opts.wire = w
	return opts.decode(stdout, payload)
}

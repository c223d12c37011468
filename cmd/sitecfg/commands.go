package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"github.com/bakrblog/siteconfig"
)

func encodeTable(opts options) ([]byte, error) {
	format, err := siteconfig.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}
	table, err := siteconfig.LoadFile(opts.configPath)
	if err != nil {
		return nil, err
	}
	return siteconfig.EncodeConfig(table.Config(), format)
}

func cmdShow(w io.Writer, opts options) error {
	b, err := encodeTable(opts)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func cmdValidate(w io.Writer, logger zerolog.Logger, opts options) error {
	table, err := siteconfig.LoadFile(opts.configPath)
	if err != nil {
		return err
	}
	cfg := table.Config()
	logger.Debug().
		Str("title", cfg.Site.Title).
		Int("socials", len(cfg.Socials)).
		Int("active_socials", len(siteconfig.ActiveSocials(cfg.Socials))).
		Msg("configuration built")
	fmt.Fprintln(w, "configuration OK")
	return nil
}

func cmdExport(logger zerolog.Logger, opts options) error {
	if opts.out == "" {
		return errors.New("export: -out is required")
	}
	b, err := encodeTable(opts)
	if err != nil {
		return err
	}

	pendingFile, err := renameio.NewPendingFile(opts.out)
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending file")
		}
	}()

	if _, err := pendingFile.Write(b); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", opts.out, err)
	}
	logger.Info().Str("path", opts.out).Int("bytes", len(b)).Msg("configuration exported")
	return nil
}

func cmdJSONLD(w io.Writer, opts options) error {
	table, err := siteconfig.LoadFile(opts.configPath)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table.Config().WebsiteJSONLD())
	return err
}

package cmd

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/df07/go-bucket-raytracer/pkg/log"
)

var logger = log.New("raytracer")

// setupLogging applies --log-level, then lets -v and -vv raise verbosity further.
func setupLogging(ctx *cli.Context) error {
	level, err := log.ParseLevel(ctx.GlobalString("log-level"))
	if err != nil {
		return errors.Wrap(err, "log-level")
	}
	log.SetLevel(level)

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
	return nil
}

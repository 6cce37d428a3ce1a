package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	gbconv "github.com/ginjol83/gameboy-png-converter"
	"github.com/urfave/cli/v2"
)

const defaultDB = "gbconv.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func main() {
	app := cli.NewApp()

	app.Name = "gbconv"
	app.Usage = "Game Boy image conversion utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GBCONV_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to tile cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Quantize an image to the Game Boy palette",
			Description: "Writes FILE re-colored with the four shade palette to OUTPUT, or FILE with a .gb.png suffix if OUTPUT is omitted.",
			ArgsUsage:   "FILE [OUTPUT]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "fit",
					Usage: "scale to the 160x144 screen first",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := gbconv.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				src := c.Args().First()
				dst := c.Args().Get(1)
				if dst == "" {
					dst = strings.TrimSuffix(src, filepath.Ext(src)) + ".gb.png"
				}

				if err := m.ConvertFile(src, dst, c.Bool("fit")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "export",
			Usage:       "Quantize an image and export Game Boy tile data",
			Description: "Writes the packed 2bpp tile data and a generated C listing next to FILE, or into the directory given with --output.",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "name",
					Usage: "base identifier for the generated constants",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output directory",
				},
				&cli.BoolFlag{
					Name:  "fit",
					Usage: "scale to the 160x144 screen first",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := gbconv.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				src := c.Args().First()
				dir := c.String("output")
				if dir == "" {
					dir = filepath.Dir(src)
				}

				if err := m.ExportFile(src, c.String("name"), dir, c.Bool("fit")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan a directory tree and export every PNG found",
			Description: "Walks DIRECTORY recursively, exporting tile data next to each PNG image. Images already present in the tile cache are skipped.",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "fit",
					Usage: "scale to the 160x144 screen first",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := gbconv.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				if err := m.Scan(c.Args().First(), c.Bool("fit")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

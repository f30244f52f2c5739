package main

import (
	"fmt"
	"os"

	golog "github.com/ipfs/go-log"
	pathchain "github.com/qri-io/pathchain"
	cli "github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"
)

var log = golog.Logger("pathchain")

func init() {
	if lvl := os.Getenv("PATHCHAIN_LOGGING"); lvl != "" {
		golog.SetLogLevel("pathchain", lvl)
	}
}

func main() {
	app := &cli.App{
		Name:  "pathchain",
		Usage: "inspect filesystem-style path values",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print verbose output",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				golog.SetLogLevel("pathchain", "debug")
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "render",
				Usage: "print the canonical form of a path",
				Action: func(c *cli.Context) error {
					p := pathchain.Parse(c.Args().Get(0))
					log.Debugf("parsed %q into %d segments", c.Args().Get(0), len(pathchain.Segments(p)))
					fmt.Println(p.String())
					return nil
				},
			},
			{
				Name:  "segments",
				Usage: "print each segment name on its own line",
				Action: func(c *cli.Context) error {
					p := pathchain.Parse(c.Args().Get(0))
					for _, name := range pathchain.Segments(p) {
						fmt.Println(name)
					}
					return nil
				},
			},
			{
				Name:  "walk",
				Usage: "step through a path node by node",
				Action: func(c *cli.Context) error {
					p := pathchain.Parse(c.Args().Get(0))
					for ; p != nil; p = p.Next() {
						switch p.(type) {
						case pathchain.File:
							fmt.Printf("file %q\n", p.Name())
						case pathchain.Directory:
							fmt.Printf("dir  %q\n", p.Name())
						}
					}
					return nil
				},
			},
			{
				Name:  "tree",
				Usage: "render one or more paths as a tree",
				Action: func(c *cli.Context) error {
					tree := treeprint.New()
					for _, raw := range c.Args().Slice() {
						p := pathchain.Parse(raw)
						log.Debugf("parsed %q as %q", raw, p.String())
						addChain(tree, p)
					}
					fmt.Print(tree.String())
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		errExit(err.Error())
	}
}

func addChain(br treeprint.Tree, p pathchain.Path) {
	for ; p != nil; p = p.Next() {
		if p.Next() == nil {
			br.AddNode(displayName(p))
			return
		}
		br = br.AddBranch(displayName(p))
	}
}

func displayName(p pathchain.Path) string {
	if name := p.Name(); name != "" {
		return name
	}
	return pathchain.Separator
}

func errExit(msg string, v ...interface{}) {
	fmt.Printf(msg, v...)
	os.Exit(1)
}

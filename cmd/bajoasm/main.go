// Command bajoasm is a small example client for the bajo package: it
// assembles a toy countdown-loop program against the default environment
// and prints its listing or raw bytes, the way bbc-disasm's urfave/cli
// command layout drives its disassembler subcommands.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/jkmnt/bajo"
)

// countdownScript builds: r0 = 0; r1 = n; loop: r0 += 1; r1 -= 1; if r1 !=
// 0 goto loop; exit(r0).
func countdownScript(n int64) (*bajo.Script, error) {
	count, err := bajo.NewImm(n)
	if err != nil {
		return nil, err
	}
	one, err := bajo.NewImm(1)
	if err != nil {
		return nil, err
	}
	zero, err := bajo.NewImm(0)
	if err != nil {
		return nil, err
	}

	r0, r1 := bajo.R(0), bajo.R(1)
	loop := bajo.NewLabel("loop")

	code := []bajo.Code{
		bajo.NewMov(r0, zero),
		bajo.NewMov(r1, count),
		loop,
		bajo.NewAdd(r0, r0, one),
		bajo.NewSub(r1, r1, one),
		bajo.NewBrNe(r1, zero, loop),
		bajo.NewExit(r0),
	}
	return bajo.NewScript(code, nil, false), nil
}

func main() {
	app := cli.NewApp()
	app.Name = "bajoasm"
	app.Usage = "assemble and inspect the bajo example countdown program"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "verbose", Usage: "trace the layout engine's fixpoint search to stderr"},
		cli.Int64Flag{Name: "count", Value: 10, Usage: "loop iteration count"},
	}
	app.Commands = []cli.Command{
		{
			Name:  "listing",
			Usage: "print the address/hex/mnemonic disassembly",
			Action: func(c *cli.Context) error {
				bajo.Verbose = c.GlobalBool("verbose")
				s, err := countdownScript(c.GlobalInt64("count"))
				if err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				listing, err := s.Listing()
				if err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				fmt.Print(listing)
				return nil
			},
		},
		{
			Name:  "bytes",
			Usage: "print the encoded bytecode as hex",
			Action: func(c *cli.Context) error {
				bajo.Verbose = c.GlobalBool("verbose")
				s, err := countdownScript(c.GlobalInt64("count"))
				if err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				out, err := s.Encode()
				if err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				fmt.Println(hex.EncodeToString(out))
				return nil
			},
		},
	}
	app.Action = func(c *cli.Context) error {
		return cli.ShowAppHelp(c)
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

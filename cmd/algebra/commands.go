// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algebra/matrix"
)

// newBinaryCmd builds a command taking two matrix names and printing a matrix.
func newBinaryCmd(a *app, use, short string, op func(*matrix.Engine, matrix.Matrix, matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.matrices(args[0], args[1])
			if err != nil {
				return err
			}
			res, err := op(a.engine, ms[0], ms[1])
			if err != nil {
				return err
			}
			return a.engine.Print(res)
		},
	}
}

// newUnaryCmd builds a command taking one matrix name and printing a matrix.
func newUnaryCmd(a *app, use, short string, op func(*matrix.Engine, matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.matrices(args[0])
			if err != nil {
				return err
			}
			res, err := op(a.engine, ms[0])
			if err != nil {
				return err
			}
			return a.engine.Print(res)
		},
	}
}

// newScalarCmd builds a command printing a float result with %g.
func newScalarCmd(a *app, use, short string, op func(*matrix.Engine, matrix.Matrix) (float64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.matrices(args[0])
			if err != nil {
				return err
			}
			v, err := op(a.engine, ms[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", v)
			return err
		},
	}
}

func newScaleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scale A K",
		Short: "Multiply every element of A by the scalar K",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid scalar %q: %w", args[1], err)
			}
			ms, err := a.matrices(args[0])
			if err != nil {
				return err
			}
			res, err := a.engine.Scale(ms[0], k)
			if err != nil {
				return err
			}
			return a.engine.Print(res)
		},
	}
}

func newRankCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rank A",
		Short: "Numerical rank of A by Gaussian elimination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.matrices(args[0])
			if err != nil {
				return err
			}
			r, err := a.engine.Rank(ms[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", r)
			return err
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show A",
		Short: "Print A in the fixed-width report format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.matrices(args[0])
			if err != nil {
				return err
			}
			return a.engine.Print(ms[0])
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	var rtol, atol float64

	cmd := &cobra.Command{
		Use:   "check A B",
		Short: "Report whether A and B are element-wise close",
		Long: `Check compares A and B element-wise with |a-b| <= atol + rtol*|b|
and prints "true" or "false". Matrices of different shapes are an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.matrices(args[0], args[1])
			if err != nil {
				return err
			}
			ok, err := matrix.AllClose(ms[0], ms[1], rtol, atol)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ok)
			return err
		},
	}
	cmd.Flags().Float64Var(&rtol, "rtol", 1e-9, "relative tolerance")
	cmd.Flags().Float64Var(&atol, "atol", 1e-12, "absolute tolerance")

	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the matrices defined in the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range a.cfg.Names() {
				m, err := a.cfg.Matrix(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%dx%d\n", name, m.Rows(), m.Cols())
			}
			return nil
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/iWorld-y/fin_radar/app/classifier/pkg/taxonomy"
)

func newMapCmd() *cobra.Command {
	var (
		logits      []float64
		topK        int
		temperature float64
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map raw [positive,negative,neutral] logits",
		Example: `  taxonomy map --logits 2,-1,0.5
  taxonomy map --logits -2,-0.5,-1 --top-k 3 --temperature 0.8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := taxonomy.MapScores(logits, topK, temperature)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().Float64SliceVar(&logits, "logits", nil, "sentiment logits in positive,negative,neutral order")
	cmd.Flags().IntVarP(&topK, "top-k", "k", taxonomy.DefaultTopK, "number of event types to return (1-6)")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", taxonomy.DefaultTemperature, "softmax temperature")
	_ = cmd.MarkFlagRequired("logits")
	return cmd
}

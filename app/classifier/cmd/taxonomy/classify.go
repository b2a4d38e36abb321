package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/fin_radar/app/classifier/internal/service"
	"github.com/iWorld-y/fin_radar/app/classifier/pkg/config"
	"github.com/iWorld-y/fin_radar/app/classifier/pkg/finbert"
	"github.com/iWorld-y/fin_radar/app/classifier/pkg/logger"
	"github.com/iWorld-y/fin_radar/app/classifier/pkg/taxonomy"
)

func newClassifyCmd() *cobra.Command {
	var (
		configPath  string
		topK        int
		temperature float64
	)

	cmd := &cobra.Command{
		Use:   "classify <text>",
		Short: "Run FinBERT on a news text and map the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			// 命令行参数优先于配置文件
			if !cmd.Flags().Changed("top-k") && cfg.Mapping.TopK > 0 {
				topK = cfg.Mapping.TopK
			}
			if !cmd.Flags().Changed("temperature") && cfg.Mapping.Temperature > 0 {
				temperature = cfg.Mapping.Temperature
			}

			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("text must not be empty")
			}

			scorer := finbert.NewScorer(finbert.Config{
				ModelPath: cfg.Model.Path,
				HFRepo:    cfg.Model.HFRepo,
				OnnxFile:  cfg.Model.OnnxFile,
			})
			if err := scorer.Load(cmd.Context()); err != nil {
				return fmt.Errorf("load model: %w", err)
			}
			defer func() {
				if err := scorer.Close(); err != nil {
					logger.Log.Warnf("关闭模型会话失败: %v", err)
				}
			}()

			logits, err := scorer.Score(cmd.Context(), text)
			if err != nil {
				return err
			}
			logger.Log.Debugf("logits: %v", logits)

			res, err := taxonomy.MapScores(logits, topK, temperature)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), &service.ClassifyReply{
				Input:  text,
				Result: res.Classification,
				TopK:   res.TopK,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "app/classifier/configs/cli.yaml", "config file path")
	cmd.Flags().IntVarP(&topK, "top-k", "k", taxonomy.DefaultTopK, "number of event types to return (1-6)")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", taxonomy.DefaultTemperature, "softmax temperature")
	return cmd
}

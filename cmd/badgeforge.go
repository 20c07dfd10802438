// Copyright © 2026 SongDrop, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/songdrop/badgeforge/internal/apiserver"
	"github.com/songdrop/badgeforge/internal/config"
	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/songdrop/badgeforge/internal/log"
	"github.com/songdrop/badgeforge/internal/orchestrator"
	"github.com/spf13/cobra"
)

var sigs = make(chan os.Signal, 1)

var rootCmd = &cobra.Command{
	Use:   "badgeforge",
	Short: "BadgeForge renders SongDrop badges and tokenizes them on the ledger",
	Long: `BadgeForge is the SongDrop badge service. It composites collectible
badge images, pins them to content-addressed storage, and mints each
badge as a single-supply non-fungible token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "file", "f", "", "config file")
}

// Execute is called by the main method of the package
func Execute() error {
	return rootCmd.Execute()
}

func run() error {

	// Read the configuration first of all
	err := config.ReadConfig(cfgFile)

	// Setup logging after reading config (even if failed), to output header correctly
	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()
	ctx = log.WithLogger(ctx, logrus.WithField("pid", os.Getpid()))
	log.SetFormatting(log.Formatting{
		DisableColor: !config.GetBool(config.LogColor),
		UTC:          config.GetBool(config.LogUTC),
	})
	log.SetLevel(config.GetString(config.LogLevel))
	log.L(ctx).Infof("BadgeForge")
	log.L(ctx).Infof("© Copyright 2026 SongDrop, Inc.")

	// Deferred error return from reading config
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed, err)
	}
	i18n.SetLang(config.GetString(config.Lang))

	// Listen to sigterms
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		sig := <-sigs
		log.L(ctx).Infof("Shutting down due to %s", sig)
		cancelCtx()
	}()

	// Setup debug port (always allocated on localhost only)
	debugPort := config.GetInt(config.DebugPort)
	if debugPort > 0 {
		go func() {
			log.L(ctx).Debugf("Debug HTTP endpoint listening on localhost:%d: %s", debugPort, http.ListenAndServe(fmt.Sprintf("localhost:%d", debugPort), nil))
		}()
	}

	apiserver.InitConfig()
	o := orchestrator.NewOrchestrator()
	if err = o.Init(ctx); err != nil {
		return err
	}
	return apiserver.NewAPIServer().Serve(ctx, o)
}

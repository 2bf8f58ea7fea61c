/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rotblauer/pluscodes/daemon/webd"
	"github.com/rotblauer/pluscodes/params"
)

var optHTTPAddr string
var optDefaultCodeLength int

// webdCmd represents the serve command
var webdCmd = &cobra.Command{
	Use:   "webd",
	Short: "Start the webserver",
	Long:  `Serves the codec over HTTP: encode, decode, shorten, recover, GeoJSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		slog.Info("webd.Run")
		config := params.DefaultWebDaemonConfig()
		config.Address = optHTTPAddr
		config.DefaultCodeLength = optDefaultCodeLength
		server := webd.NewWebDaemon(config)
		if err := server.Run(); err != nil {
			log.Fatalln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(webdCmd)

	defaults := params.DefaultWebDaemonConfig()

	pFlags := webdCmd.PersistentFlags()
	pFlags.StringVar(&optHTTPAddr, "address", defaults.Address, "HTTP address to listen on")
	pFlags.IntVar(&optDefaultCodeLength, "code-length", defaults.DefaultCodeLength, "Default encode precision")
}

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
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rotblauer/pluscodes/olc"
)

// shortenCmd represents the shorten command
var shortenCmd = &cobra.Command{
	Use:   "shorten [code] [lat] [lng]",
	Short: "Shorten a full code against a reference location",
	Long: `Shorten removes as many leading digits from a full code as the
reference location safely allows. The result recovers to the original
code with 'recover' from anywhere near the reference.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		lat, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			log.Fatalln("invalid latitude:", err)
		}
		lng, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			log.Fatalln("invalid longitude:", err)
		}
		short, err := olc.Shorten(args[0], lat, lng)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Println(short)
	},
}

func init() {
	rootCmd.AddCommand(shortenCmd)
}

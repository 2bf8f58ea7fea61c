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

var optCodeLength int

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [lat] [lng]",
	Short: "Encode a location as a plus code",
	Long: `Encode converts a latitude/longitude pair to a plus code.

Latitude is clamped to [-90,90] and longitude wrapped into [-180,180),
so any numeric input encodes. Use --length for more or less precision;
lengths above 10 refine the cell with grid digits, down to sub-meter
at 15.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			log.Fatalln("invalid latitude:", err)
		}
		lng, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			log.Fatalln("invalid longitude:", err)
		}
		code, err := olc.Encode(lat, lng, optCodeLength)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Println(code)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().IntVar(&optCodeLength, "length", olc.DefaultCodeLength, "Number of code digits (2-15)")
}

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
	"encoding/json"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rotblauer/pluscodes/geo"
	"github.com/rotblauer/pluscodes/olc"
)

var optGeoJSON bool

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [code]...",
	Short: "Decode full plus codes to their bounding areas",
	Long: `Decode prints the bounding rectangle and center of each full code,
one JSON document per line. With --geojson, prints a polygon feature
per code instead.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		enc := json.NewEncoder(os.Stdout)
		for _, code := range args {
			if optGeoJSON {
				f, err := geo.Feature(code)
				if err != nil {
					log.Fatalf("%s: %v", code, err)
				}
				if err := enc.Encode(f); err != nil {
					log.Fatalln(err)
				}
				continue
			}
			area, err := olc.Decode(code)
			if err != nil {
				log.Fatalf("%s: %v", code, err)
			}
			lat, lng := area.Center()
			if err := enc.Encode(struct {
				olc.CodeArea
				LatCenter float64 `json:"lat_center"`
				LngCenter float64 `json:"lng_center"`
			}{area, lat, lng}); err != nil {
				log.Fatalln(err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().BoolVar(&optGeoJSON, "geojson", false, "Print GeoJSON features")
}

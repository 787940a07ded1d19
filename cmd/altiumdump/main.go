package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/go-altium/altiumsch"
	"github.com/go-altium/altiumsch/cfbsource"
	"github.com/spf13/cobra"
)

var (
	component string
	raw       bool
)

func prettyPrint(v any) string {
	buf, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		log.Println("JSON marshal error:", err)
		return fmt.Sprintf("%+v", v)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		return string(buf)
	}
	return pretty.String()
}

func dumpLib(filename string) {
	src, err := cfbsource.Open(filename)
	if err != nil {
		log.Printf("Error while opening file: %s, reason: %s", filename, err)
		return
	}
	defer src.Close()

	lib, err := altiumsch.LoadSchLib(src, altiumsch.Options{})
	if err != nil {
		log.Printf("Error while parsing file: %s, reason: %s", filename, err)
		return
	}

	if component == "" {
		fmt.Println(prettyPrint(lib.Header))
		fmt.Println(prettyPrint(lib.Components))
		return
	}

	comp, err := lib.Component(component)
	if err != nil {
		log.Printf("Error while loading component %q: %s", component, err)
		return
	}

	if raw {
		for _, rec := range comp.Records {
			fmt.Println(prettyPrint(rec.Raw))
		}
		return
	}
	fmt.Println(prettyPrint(comp))
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "altiumdump",
		Short: "An Altium schematic library parser",
		Long:  "Dumps the header, component directory, or a single component of an Altium SchLib file",
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump [file]",
		Short: "Dumps an Altium SchLib file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			dumpLib(args[0])
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("You are using version 0.1.0")
		},
	}

	dumpCmd.Flags().StringVarP(&component, "component", "c", "", "dump a single component by libref instead of the whole directory")
	dumpCmd.Flags().BoolVarP(&raw, "raw", "", false, "dump raw key/value pairs instead of bound struct fields")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

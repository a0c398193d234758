// Example program demonstrating the semvermanager library API.
//
// Run from the repo root:
//
//	go run ./example/
//
// The example works on a throwaway copy of the sample store, so nothing in
// the repository changes.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/MyCarrier-DevOps/go-semvermanager/pkg/semvermanager"
)

func main() {
	dir, err := os.MkdirTemp("", "semvermanager-example")
	if err != nil {
		log.Fatalf("creating temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	storePath := filepath.Join(dir, "VersioningControl.xml")
	if err := semvermanager.Init(storePath, false); err != nil {
		log.Fatalf("writing sample store: %v", err)
	}

	result, err := semvermanager.Run(semvermanager.Options{
		StorePath: storePath,
		Build:     "release",
	})
	if err != nil {
		log.Fatalf("patch failed: %v", err)
	}
	printVersion("Patch default/release", result)

	result, err = semvermanager.Run(semvermanager.Options{
		StorePath:             storePath,
		Action:                "Promote",
		DestinationDefinition: "production",
		Explain:               true,
	})
	if err != nil {
		log.Fatalf("promote failed: %v", err)
	}
	printVersion("Promote default -> production", result)
	fmt.Print(result.ExplainResult.FormattedOutput)
}

func printVersion(label string, result *semvermanager.Result) {
	fmt.Printf("=== %s ===\n", label)

	keys := make([]string, 0, len(result.Variables))
	for k := range result.Variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("%-30s %s\n", k, result.Variables[k])
	}
	fmt.Println()
}

package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/aleksaelezovic/urigo/internal/encoding"
	"github.com/aleksaelezovic/urigo/internal/storage"
	"github.com/aleksaelezovic/urigo/pkg/uri"
	"github.com/aleksaelezovic/urigo/pkg/uriset"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: urigo <command> [args]")
		fmt.Println("Commands:")
		fmt.Println("  parse <uri>            - Parse a URI and print its components")
		fmt.Println("  resolve <base> <ref>   - Resolve a reference against a base URI")
		fmt.Println("  normalize <uri>        - Apply remove_dot_segments to the path")
		fmt.Println("  dedup [db-path]        - Deduplicate URIs from stdin (default: ./urigo_data)")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "parse":
		if len(os.Args) < 3 {
			fmt.Println("Usage: urigo parse <uri>")
			os.Exit(1)
		}
		runParse(os.Args[2])
	case "resolve":
		if len(os.Args) < 4 {
			fmt.Println("Usage: urigo resolve <base> <ref>")
			os.Exit(1)
		}
		runResolve(os.Args[2], os.Args[3])
	case "normalize":
		if len(os.Args) < 3 {
			fmt.Println("Usage: urigo normalize <uri>")
			os.Exit(1)
		}
		runNormalize(os.Args[2])
	case "dedup":
		dbPath := "./urigo_data"
		if len(os.Args) >= 3 {
			dbPath = os.Args[2]
		}
		runDedup(dbPath)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func runParse(uriString string) {
	parsed, err := uri.Parse(uriString)
	if err != nil {
		log.Fatalf("Failed to parse URI: %v", err)
	}

	if parsed.IsRelativeReference() {
		fmt.Println("Relative reference")
	} else {
		fmt.Printf("Scheme:   %s\n", parsed.Scheme())
	}
	if authority := parsed.Authority(); authority != nil {
		if authority.HasUserinfo() {
			fmt.Printf("Userinfo: %s\n", authority.Userinfo())
		}
		fmt.Printf("Host:     %s\n", authority.Host())
		if authority.HasPort() {
			fmt.Printf("Port:     %d\n", authority.Port())
		}
	}
	fmt.Printf("Path:     %s\n", parsed.PathAsString())
	for _, segment := range parsed.Path() {
		fmt.Printf("  segment: %q\n", segment)
	}
	if parsed.HasQuery() {
		fmt.Printf("Query:    %s\n", parsed.Query())
	}
	if parsed.HasFragment() {
		fmt.Printf("Fragment: %s\n", parsed.Fragment())
	}
}

func runResolve(baseString, refString string) {
	base, err := uri.Parse(baseString)
	if err != nil {
		log.Fatalf("Failed to parse base URI: %v", err)
	}
	if base.IsRelativeReference() {
		log.Fatalf("Base URI must not be a relative reference: %s", baseString)
	}
	ref, err := uri.Parse(refString)
	if err != nil {
		log.Fatalf("Failed to parse reference: %v", err)
	}

	fmt.Println(base.Resolve(ref))
}

func runNormalize(uriString string) {
	parsed, err := uri.Parse(uriString)
	if err != nil {
		log.Fatalf("Failed to parse URI: %v", err)
	}
	parsed.NormalizePath()
	fmt.Println(parsed)
}

func runDedup(dbPath string) {
	badgerStorage, err := storage.NewBadgerStorage(dbPath)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer badgerStorage.Close()

	set := uriset.New(badgerStorage, encoding.NewKeyEncoder())

	var added, duplicate, failed int
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		canonical, isNew, err := set.Add(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", line, err)
			failed++
			continue
		}
		if isNew {
			fmt.Println(canonical)
			added++
		} else {
			duplicate++
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	total, err := set.Count()
	if err != nil {
		log.Fatalf("Failed to count entries: %v", err)
	}
	fmt.Fprintf(os.Stderr, "added %d, duplicate %d, failed %d, total in set %d\n",
		added, duplicate, failed, total)
}

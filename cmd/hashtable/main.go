// Command hashtable fills a table with random test data and reports how the collision resolution technique copes
package main

import (
	"flag"
	"fmt"
	"github.com/gostonefire/hashtable"
	"github.com/gostonefire/hashtable/crt"
	"github.com/pkg/profile"
	"log/slog"
	"os"
)

func main() {
	if debugProfile != "" {
		defer profile.Start(profile.ProfilePath(debugProfile)).Stop()
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	method, err := crt.ParseMethod(methodName)
	if err != nil {
		logger.Error("parse arguments", "error", err)
		os.Exit(2)
	}

	table, err := hashtable.New[int, string](hashtable.Conf[int]{
		InitialCapacity: capacity,
		Method:          method,
		Logger:          logger,
		Seed:            seed,
	})
	if err != nil {
		logger.Error("create table", "error", err)
		os.Exit(1)
	}

	codec := hashtable.IntStringCodec()

	if load != "" {
		conversionErrors, err := table.LoadFromFile(load, codec)
		if err != nil {
			logger.Error("load file", "file", load, "error", err)
			os.Exit(1)
		}
		logger.Info("loaded file", "file", load, "entries", table.Len(), "skipped", len(conversionErrors))
	} else {
		inserted, err := table.LoadTestData(count, hashtable.IntStringGenerator(maxKey))
		if err != nil {
			logger.Error("load test data", "error", err)
			os.Exit(1)
		}
		logger.Info("loaded test data", "draws", count, "inserted", inserted)
	}

	hits := searchAll(table)
	logger.Info("searched keys", "hits", hits, "misses", table.Stats().Searches-hits)

	if switchTo != "" {
		to, err := crt.ParseMethod(switchTo)
		if err != nil {
			logger.Error("parse arguments", "error", err)
			os.Exit(2)
		}
		if err = table.ChangeMethod(to); err != nil {
			logger.Error("change method", "error", err)
			os.Exit(1)
		}
		logger.Info("changed method", "method", table.MethodName())
	}

	if save != "" {
		if err = table.SaveToFile(save, codec); err != nil {
			logger.Error("save file", "file", save, "error", err)
			os.Exit(1)
		}
		logger.Info("saved file", "file", save, "entries", table.Len())
	}

	if levelDB != "" {
		if err = table.SaveToLevelDB(levelDB, codec); err != nil {
			logger.Error("save database", "path", levelDB, "error", err)
			os.Exit(1)
		}
		logger.Info("saved database", "path", levelDB, "entries", table.Len())
	}

	stat, err := table.Stat(dist)
	if err != nil {
		logger.Error("collect statistics", "error", err)
		os.Exit(1)
	}

	fmt.Println(stat)
	fmt.Println(table.Stats())
	if dist {
		printDistribution(stat.BucketDistribution)
	}
}

// searchAll - Searches every key the test data generator can draw and returns the number found
func searchAll(table *hashtable.Table[int, string]) (hits int64) {
	upper := maxKey
	if upper <= 0 {
		upper = hashtable.DefaultMaxTestKey
	}
	for key := 1; key <= upper; key++ {
		if _, found := table.Search(key); found {
			hits++
		}
	}

	return
}

// printDistribution - Prints how many buckets hold a given number of entries
func printDistribution(distribution []int64) {
	histogram := make(map[int64]int64)
	var longest int64
	for _, n := range distribution {
		histogram[n]++
		longest = max(longest, n)
	}

	fmt.Println("entries per bucket:")
	for n := int64(0); n <= longest; n++ {
		if histogram[n] > 0 {
			fmt.Printf("  %d: %d buckets\n", n, histogram[n])
		}
	}
}

// ===================

var methodName = "chaining"
var capacity int64 = 10
var count = 10_000
var maxKey = 20_000
var seed uint64
var switchTo string
var save string
var load string
var levelDB string
var dist bool
var debug bool
var debugProfile = ""

func init() {
	flag.StringVar(&methodName, "method", methodName, "Collision resolution technique, one of chaining, linear, quadratic or double")
	flag.Int64Var(&capacity, "capacity", capacity, "Initial capacity, rounded up to a prime")
	flag.IntVar(&count, "count", count, "Number of random entries to draw")
	flag.IntVar(&maxKey, "max-key", maxKey, "Largest random key to draw")
	flag.Uint64Var(&seed, "seed", seed, "Seed of the random source")
	flag.StringVar(&switchTo, "switch", switchTo, "Change to the given collision resolution technique after loading")
	flag.StringVar(&save, "save", save, "Save the table to the given file")
	flag.StringVar(&load, "load", load, "Load the table from the given file instead of drawing random entries")
	flag.StringVar(&levelDB, "leveldb", levelDB, "Save the table to a LevelDB database at the given path")
	flag.BoolVar(&dist, "dist", dist, "Print the distribution of entries over buckets")
	flag.BoolVar(&debug, "debug", debug, "Log debug traces")

	flag.StringVar(&debugProfile, "profile", debugProfile, "write out a debugging profile to the given path")

	flag.Parse()
}

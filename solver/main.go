/* Copyright 2021, Arkadiusz Zarychta, arkadiusz.zarychta@h-brs.de */

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"git.solver4all.com/azaryc2s/kmst"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

var instances kmst.ArrayStringFlags

func main() {
	flag.Var(&instances, "instance", "Instance id to solve (can be repeated)")
	configF := flag.String("config", "", "Path to a JSON run configuration; overrides the other flags")
	formulation := flag.String("formulation", "MTZ", "Formulation to use. MTZ (default), SCF or MCF")
	solverName := flag.String("solver", "gurobi", "Solver backend")
	dataPath := flag.String("data", "data", "Directory containing the instance files")
	timeLimit := flag.Float64("timelimit", 0, "Engine time limit per instance in seconds. 0 means none")
	outputF := flag.String("output", "", "Path to the JSON result file. Empty means console only")

	flag.Parse()

	var (
		cfg *kmst.Config
		err error
	)
	if *configF != "" {
		cfg, err = kmst.LoadConfig(*configF)
		if err != nil {
			log.Printf("At %s: %s\n", *configF, err.Error())
			return
		}
	} else {
		cfg = &kmst.Config{
			Instances:   instances,
			Formulation: *formulation,
			Solver:      *solverName,
			DataPath:    *dataPath,
			TimeLimit:   *timeLimit,
		}
	}
	if err = cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %s\n", err.Error())
		return
	}

	runner, err := kmst.NewRunner(cfg)
	if err != nil {
		log.Printf("Invalid configuration: %s\n", err.Error())
		return
	}

	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	report := kmst.Report{
		Formulation: cfg.Formulation,
		Solver:      cfg.Solver,
		System: kmst.SysInfo{
			Platform: hostStat.Platform,
			CPU:      cpuStat[0].ModelName,
			RAM:      fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024),
		},
	}

	report.Results = runner.Run()

	solved := 0
	for _, res := range report.Results {
		if res.Solved {
			solved++
		}
	}
	log.Printf("Batch done: %d/%d instances solved\n", solved, len(report.Results))

	if *outputF != "" {
		out, err := json.MarshalIndent(report, "", "\t")
		if err != nil {
			log.Printf("Couldn't marshal the report: %s\n", err.Error())
			return
		}
		err = os.WriteFile(*outputF, out, 0644)
		if err != nil {
			log.Printf("At %s: %s\n", *outputF, err.Error())
			return
		}
		log.Printf("Report written to %s\n", *outputF)
	}
}

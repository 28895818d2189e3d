package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rpgo/mortgage-calculator/internal/calculation"
	"github.com/rpgo/mortgage-calculator/internal/output"
)

// print_rows principal years rate payments-per-year payment [from [count]]
//
//	print_rows 600000 30 4.76 26 1566.75 655 10
func main() {
	if len(os.Args) < 6 {
		fmt.Println("usage: print_rows <principal> <years> <rate> <payments-per-year> <payment> [from] [count]")
		return
	}
	perYear, err := strconv.Atoi(os.Args[4])
	if err != nil {
		panic(err)
	}
	from, count := 1, 12
	if len(os.Args) > 6 {
		if from, err = strconv.Atoi(os.Args[6]); err != nil {
			panic(err)
		}
	}
	if len(os.Args) > 7 {
		if count, err = strconv.Atoi(os.Args[7]); err != nil {
			panic(err)
		}
	}

	schedule, ok := calculation.ProjectSchedule(os.Args[1], os.Args[2], os.Args[3], perYear, os.Args[5])
	if !ok {
		fmt.Println("could not project schedule from these inputs")
		os.Exit(1)
	}

	fmt.Printf("%d rows\n", len(schedule))
	rows := output.ScheduleTableRows(schedule)
	for i := from - 1; i >= 0 && i < len(rows) && i < from-1+count; i++ {
		fmt.Println(rows[i])
	}
	if last, ok := schedule.Last(); ok {
		fmt.Printf("ending balance after #%d: %s\n", last.PaymentNumber, output.FormatCurrency(last.EndingBalance()))
	}
}

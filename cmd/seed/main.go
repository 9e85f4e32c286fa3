package main

import (
	"context"
	"flag"
	"log"

	"github.com/mateovidal/crmbridge/config"
	"github.com/mateovidal/crmbridge/pkg/database"
	"github.com/mateovidal/crmbridge/pkg/testdata"
)

func main() {
	cfg := config.Load()

	gcfg := testdata.DefaultConfig()
	flag.IntVar(&gcfg.Leads, "leads", gcfg.Leads, "number of leads to create")
	flag.IntVar(&gcfg.Customers, "customers", gcfg.Customers, "number of customers to create")
	flag.IntVar(&gcfg.DealsPerCustomer, "deals-per-customer", gcfg.DealsPerCustomer, "deals per customer")
	flag.Int64Var(&gcfg.Seed, "seed", 0, "random seed (0 for varied output)")
	flag.Parse()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	gen := testdata.NewGenerator(db.Ent, gcfg)
	leads, customers, deals, err := gen.Run(context.Background())
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Printf("seed complete: %d leads, %d customers, %d deals", leads, customers, deals)
}

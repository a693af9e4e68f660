package main

import (
	"fmt"
	"sync"

	"github.com/TuftsBCB/ssfrag/cmd/util"
	"github.com/TuftsBCB/ssfrag/fragment"
	"github.com/TuftsBCB/ssfrag/pdb"
)

type pool struct {
	wg      *sync.WaitGroup
	jobs    chan job
	results chan result
}

type job struct {
	index int
	chain pdb.Chain
}

type result struct {
	index int
	chain fragment.Chain
	err   error
}

func newFragmentWorkers(numWorkers int) pool {
	jobs := make(chan job, numWorkers*2)
	results := make(chan result, numWorkers*2)
	wg := &sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- discover(j)
			}
		}()
	}
	return pool{wg, jobs, results}
}

func discover(j job) result {
	r := result{
		index: j.index,
		chain: fragment.Chain{
			Structure: j.chain.Structure,
			Model:     j.chain.Model,
			Ident:     j.chain.Ident,
		},
	}
	frags, err := fragment.Discover(j.chain.Residues, util.FlagWindow)
	if err == nil && !util.FlagNoMerge {
		frags, err = fragment.Merge(j.chain.Residues, frags)
	}
	if err != nil {
		r.err = fmt.Errorf("Could not find fragments in %s: %w", j.chain, err)
		return r
	}
	r.chain.Fragments = frags
	return r
}

func (p pool) done() {
	close(p.jobs)
	p.wg.Wait() // wait for workers to finish sending results
	close(p.results)
}

func (p pool) enqueue(index int, chain pdb.Chain) {
	p.jobs <- job{index, chain}
}

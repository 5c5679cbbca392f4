package enzyme

// table is keyed by name. Offsets are from the first base of the site.
var table = byName([]Enzyme{
	{"AarI", "CACCTGCNNNNNNNN", 11, 15},
	{"AatII", "GACGTC", 5, 1},
	{"Acc65I", "GGTACC", 1, 5},
	{"AclI", "AACGTT", 2, 4},
	{"AfeI", "AGCGCT", 3, 3},
	{"AflII", "CTTAAG", 1, 5},
	{"AgeI", "ACCGGT", 1, 5},
	{"AluI", "AGCT", 2, 2},
	{"ApaI", "GGGCCC", 5, 1},
	{"ApaLI", "GTGCAC", 1, 5},
	{"AscI", "GGCGCGCC", 2, 6},
	{"AvrII", "CCTAGG", 1, 5},
	{"BamHI", "GGATCC", 1, 5},
	{"BbsI", "GAAGACNNNNNN", 8, 12},
	{"BbvCI", "CCTCAGC", 2, 5},
	{"BclI", "TGATCA", 1, 5},
	{"BglII", "AGATCT", 1, 5},
	{"BmtI", "GCTAGC", 5, 1},
	{"BsaI", "GGTCTCNNNNN", 7, 11},
	{"BsiWI", "CGTACG", 1, 5},
	{"BsmBI", "CGTCTCNNNNN", 7, 11},
	{"BsmI", "GAATGCN", 7, 5},
	{"BspEI", "TCCGGA", 1, 5},
	{"BsrGI", "TGTACA", 1, 5},
	{"BssHII", "GCGCGC", 1, 5},
	{"BstBI", "TTCGAA", 2, 4},
	{"BstEII", "GGTNACC", 1, 6},
	{"BtgZI", "GCGATGNNNNNNNNNNNNNN", 16, 20},
	{"ClaI", "ATCGAT", 2, 4},
	{"DpnII", "GATC", 0, 4},
	{"DraI", "TTTAAA", 3, 3},
	{"EagI", "CGGCCG", 1, 5},
	{"EcoRI", "GAATTC", 1, 5},
	{"EcoRV", "GATATC", 3, 3},
	{"Esp3I", "CGTCTCNNNNN", 7, 11},
	{"FseI", "GGCCGGCC", 6, 2},
	{"HaeIII", "GGCC", 2, 2},
	{"HindIII", "AAGCTT", 1, 5},
	{"HpaI", "GTTAAC", 3, 3},
	{"KpnI", "GGTACC", 5, 1},
	{"MboI", "GATC", 0, 4},
	{"MfeI", "CAATTG", 1, 5},
	{"MluI", "ACGCGT", 1, 5},
	{"MseI", "TTAA", 1, 3},
	{"NcoI", "CCATGG", 1, 5},
	{"NdeI", "CATATG", 2, 4},
	{"NheI", "GCTAGC", 1, 5},
	{"NotI", "GCGGCCGC", 2, 6},
	{"NruI", "TCGCGA", 3, 3},
	{"NsiI", "ATGCAT", 5, 1},
	{"PacI", "TTAATTAA", 5, 3},
	{"PaqCI", "CACCTGCNNNNNNNN", 11, 15},
	{"PmeI", "GTTTAAAC", 4, 4},
	{"PstI", "CTGCAG", 5, 1},
	{"PvuI", "CGATCG", 4, 2},
	{"PvuII", "CAGCTG", 3, 3},
	{"SacI", "GAGCTC", 5, 1},
	{"SacII", "CCGCGG", 4, 2},
	{"SalI", "GTCGAC", 1, 5},
	{"SapI", "GCTCTTCNNNN", 8, 11},
	{"Sau3AI", "GATC", 0, 4},
	{"SbfI", "CCTGCAGG", 6, 2},
	{"ScaI", "AGTACT", 3, 3},
	{"SfiI", "GGCCNNNNNGGCC", 8, 5},
	{"SmaI", "CCCGGG", 3, 3},
	{"SpeI", "ACTAGT", 1, 5},
	{"SphI", "GCATGC", 5, 1},
	{"SwaI", "ATTTAAAT", 4, 4},
	{"XbaI", "TCTAGA", 1, 5},
	{"XhoI", "CTCGAG", 1, 5},
	{"XmaI", "CCCGGG", 1, 5},
	{"ZraI", "GACGTC", 3, 3},
})

func byName(enzymes []Enzyme) map[string]Enzyme {
	m := make(map[string]Enzyme, len(enzymes))
	for _, e := range enzymes {
		m[e.Name] = e
	}
	return m
}

package util

import "regexp"

// const
const (
	// 单链命中数上限，超过则视为搜索范围过宽
	SearchResultMax = 4000
	// 有效查询长度下限 (查询长度 - 错配数)
	QueryLengthMin = 3
	// 引物每多少碱基允许一个错配
	BasesPerMismatch = 8
	// 单条引物结合位点上限
	PrimerSiteMax = 4000
	// context 检查间隔
	ScanCheckInterval = 4096
)

// limitation
var (
	// 退火温度经验公式参数
	TmA = 69.3 // 64.9
	TmB = 41.0
	TmC = 650.0 // 41*16.4=672.4
)

// regexp
var (
	// ACGT valid sequence
	ACGT = regexp.MustCompile(`^[ACGT]*$`)
	// IUPAC nucleotide and ambiguity codes, either case
	IUPAC = regexp.MustCompile(`^[ACGTURYSWKMBDHVNacgturyswkmbdhvn]*$`)
	// Blank matches whitespace and quoting left over from copy-paste
	Blank = regexp.MustCompile(`[\s'"]+`)
)

package kmst

// Edge is an undirected edge between two vertices as read from the data file.
type Edge struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Arc is one orientation of an undirected edge.
type Arc struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Instance holds one k-MST problem: a weighted undirected graph on the
// vertices {0,...,N} and the target subtree size K. Arcs always contains
// both orientations of every edge, and Weights has an entry for every arc.
// Vertices, Edges, Arcs and Weights are shared between k-variants of the
// same base graph and must not be mutated after loading.
type Instance struct {
	Name string `json:"name"`
	N    int    `json:"n"` // number of non-depot vertices; vertex ids run 0..N
	M    int    `json:"m"` // edge count from the file header, informational
	K    int    `json:"k"`

	Vertices []int       `json:"-"`
	Edges    []Edge      `json:"-"`
	Arcs     []Arc       `json:"-"`
	Weights  map[Arc]int `json:"-"`
}

// Validation is the structural report for one solved instance.
type Validation struct {
	Nodes       []int       `json:"nodes"`
	Edges       []Edge      `json:"edges"`
	IsTree      bool        `json:"is_tree"`
	IsConnected bool        `json:"is_connected"`
	Seq         map[int]int `json:"seq,omitempty"` // MTZ sequence positions of selected vertices
}

// Result is the outcome for a single instance run.
type Result struct {
	Instance   string      `json:"instance"`
	K          int         `json:"k"`
	Solved     bool        `json:"solved"`
	Status     string      `json:"status"`
	Objective  int         `json:"objective"`
	Time       string      `json:"time"`
	Validation *Validation `json:"validation,omitempty"`
	Comment    string      `json:"comment,omitempty"`
}

// Report is the batch output written by the solver binary.
type Report struct {
	Formulation string   `json:"formulation"`
	Solver      string   `json:"solver"`
	System      SysInfo  `json:"system"`
	Results     []Result `json:"results"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

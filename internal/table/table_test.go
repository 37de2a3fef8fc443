package table_test

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajviz/internal/table"
)

func writeFile(dir, name, content string) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
	return path
}

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("reads one row per line", func() {
		path := writeFile(dir, "pendel_mp.data", "0 0.785 0\n0.1 0.78 -0.09\n0.2 0.77 -0.19\n")

		tbl, err := table.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(tbl.Rows()).To(Equal(3))
		Expect(tbl.Cols()).To(Equal(3))
		Expect(tbl.At(2, 2)).To(BeNumerically("~", -0.19, 1e-12))
	})

	It("loads a single row", func() {
		path := writeFile(dir, "one.data", "0.0 0.0 0.0\n")

		tbl, err := table.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(tbl.Rows()).To(Equal(1))

		for j := 0; j < 3; j++ {
			col, err := tbl.Col(j)
			Expect(err).NotTo(HaveOccurred())
			Expect(col).To(Equal([]float64{0}))
		}
	})

	It("reports a missing file as not-exist", func() {
		_, err := table.Load(filepath.Join(dir, "netzwerk3.data"))
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
	})

	It("rejects a non-numeric token with its line", func() {
		path := writeFile(dir, "bad.data", "0 0 0\n1 abc 2\n")

		tbl, err := table.Load(path)
		Expect(tbl).To(BeNil())
		Expect(errors.Is(err, table.ErrMalformed)).To(BeTrue())

		var perr *table.ParseError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Line).To(Equal(2))
		Expect(err.Error()).To(ContainSubstring("abc"))
	})

	It("rejects hexadecimal float literals", func() {
		for _, tok := range []string{"0x1p-2", "-0X1.8p1", "+0x10"} {
			_, err := table.Parse(strings.NewReader("0 " + tok + " 1\n"))
			Expect(errors.Is(err, table.ErrMalformed)).To(BeTrue(), tok)
		}
	})

	It("rejects rows of inconsistent width", func() {
		path := writeFile(dir, "ragged.data", "0 0 0\n1 1\n")

		tbl, err := table.Load(path)
		Expect(tbl).To(BeNil())
		Expect(errors.Is(err, table.ErrRagged)).To(BeTrue())
	})

	It("rejects an empty file", func() {
		path := writeFile(dir, "empty.data", "\n\n")

		_, err := table.Load(path)
		Expect(errors.Is(err, table.ErrEmpty)).To(BeTrue())
	})
})

var _ = Describe("Parse", func() {
	It("skips blank lines and comments", func() {
		src := "# t q p\n\n0 1 2   # first\n  \n3 4 5\n"

		tbl, err := table.Parse(strings.NewReader(src))
		Expect(err).NotTo(HaveOccurred())
		Expect(tbl.Rows()).To(Equal(2))
		Expect(tbl.At(1, 0)).To(Equal(3.0))
	})

	It("accepts nan, inf and overflowing literals", func() {
		tbl, err := table.Parse(strings.NewReader("nan inf 1e999\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsNaN(tbl.At(0, 0))).To(BeTrue())
		Expect(math.IsInf(tbl.At(0, 1), 1)).To(BeTrue())
		Expect(math.IsInf(tbl.At(0, 2), 1)).To(BeTrue())
	})

	It("accepts tabs and repeated spaces", func() {
		tbl, err := table.Parse(strings.NewReader("0\t1    2\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(tbl.Cols()).To(Equal(3))
	})

	It("keeps row count equal to line count", func() {
		var b strings.Builder
		for i := 0; i < 250; i++ {
			b.WriteString("0.25 0.5 -0.5\n")
		}

		tbl, err := table.Parse(strings.NewReader(b.String()))
		Expect(err).NotTo(HaveOccurred())
		Expect(tbl.Rows()).To(Equal(250))

		col, err := tbl.Col(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(col).To(HaveLen(250))
	})
})

var _ = Describe("Col", func() {
	It("preserves row order", func() {
		tbl, err := table.Parse(strings.NewReader("0 10\n1 11\n2 12\n"))
		Expect(err).NotTo(HaveOccurred())

		col, err := tbl.Col(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(col).To(Equal([]float64{10, 11, 12}))
	})

	It("fails outside the table", func() {
		tbl, err := table.Parse(strings.NewReader("0 10\n"))
		Expect(err).NotTo(HaveOccurred())

		_, err = tbl.Col(2)
		Expect(errors.Is(err, table.ErrColumnRange)).To(BeTrue())

		_, err = tbl.Col(-1)
		Expect(errors.Is(err, table.ErrColumnRange)).To(BeTrue())
	})

	It("returns a copy", func() {
		tbl, err := table.Parse(strings.NewReader("1 2\n"))
		Expect(err).NotTo(HaveOccurred())

		col, _ := tbl.Col(0)
		col[0] = 99
		Expect(tbl.At(0, 0)).To(Equal(1.0))
	})
})

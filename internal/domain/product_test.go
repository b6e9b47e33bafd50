package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_DisplayCategory_Translated(t *testing.T) {
	p := Product{ProductID: "p1", CategoryName: "eletronicos", Category: "electronics"}
	assert.Equal(t, "electronics", p.DisplayCategory())
}

func TestProduct_DisplayCategory_FallsBackToRawName(t *testing.T) {
	p := Product{ProductID: "p1", CategoryName: "pc_gamer"}
	assert.Equal(t, "pc_gamer", p.DisplayCategory())
}

package helper_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/on-the-ground/partial_ive_go/shared/helper"
	"github.com/stretchr/testify/assert"
)

func TestMust_ReturnsValue(t *testing.T) {
	assert.Equal(t, 42, helper.Must(strconv.Atoi("42")))
}

func TestMust_PanicsWithError(t *testing.T) {
	err := fmt.Errorf("nope")
	assert.PanicsWithError(t, "nope", func() {
		helper.Must(0, err)
	})
}

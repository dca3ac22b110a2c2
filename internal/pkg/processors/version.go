package processors

import (
	"github.com/chrisdone/redex/internal/pkg/common"
	"strconv"
)

var Version = strconv.Itoa(int(common.EvaluatorVersion)/100) + "." + strconv.Itoa(int(common.EvaluatorVersion)%100)

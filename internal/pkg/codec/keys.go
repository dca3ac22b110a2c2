package codec

const (
	keyVar    = "var"
	keyCon    = "con"
	keyInt    = "int"
	keyApply  = "apply"
	keyLambda = "lambda"
	keySelect = "select"

	keyFunc      = "func"
	keyArg       = "arg"
	keyParam     = "param"
	keyBody      = "body"
	keyCondition = "condition"
	keyCases     = "cases"
	keyPattern   = "pattern"

	keyData   = "data"
	keyNamed  = "named"
	keyAny    = "any"
	keyName   = "name"
	keyValues = "values"
)

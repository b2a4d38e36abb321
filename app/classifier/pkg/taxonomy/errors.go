package taxonomy

import "errors"

var (
	// ErrShape 情绪 logits 长度不为 3
	ErrShape = errors.New("taxonomy: shape error")
	// ErrInvalidParameter 温度 <= 0 或输入含 NaN/Inf
	ErrInvalidParameter = errors.New("taxonomy: invalid parameter")
)

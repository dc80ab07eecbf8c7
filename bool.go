package bitmask

// Go 不允许对 bool 使用 | ^ & 运算符,因此布尔值单独实现,
// 视作宽度为1的位掩码,规则与整数版本一致

// MaskBool 等价于 target = target || bits
func MaskBool(target *bool, bits bool) {
	*target = *target || bits
}

// FlipBool 等价于 target = target != bits
func FlipBool(target *bool, bits bool) {
	*target = *target != bits
}

// UnmaskBool 等价于 target = target && !bits
func UnmaskBool(target *bool, bits bool) {
	*target = *target && !bits
}

// MaskedBool 等价于 (target && bits) == bits
// bits 为 false 时恒为 true
func MaskedBool(target, bits bool) bool {
	return !bits || target
}

// Bool 单个布尔标记,实现 Maskable[Bool]
type Bool bool

func (b *Bool) Mask(bits Bool) {
	MaskBool((*bool)(b), bool(bits))
}

func (b *Bool) Flip(bits Bool) {
	FlipBool((*bool)(b), bool(bits))
}

func (b *Bool) Unmask(bits Bool) {
	UnmaskBool((*bool)(b), bool(bits))
}

func (b Bool) Masked(bits Bool) bool {
	return MaskedBool(bool(b), bool(bits))
}

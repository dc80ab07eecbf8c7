package bitmask

import "golang.org/x/exp/constraints"

// Integer 泛型类型约束,包含所有有符号/无符号整数类型(含 uintptr)
// 浮点数不支持位运算,不在此约束内
type Integer interface {
	constraints.Integer
}

// Mask 将 bits 中为1的位在 target 中置为1,不影响其他位
// 位运算: target = target | bits
func Mask[T Integer](target *T, bits T) {
	*target |= bits
}

// Flip 翻转 target 中由 bits 指定的位,不影响其他位
// 位运算: target = target ^ bits
//
// 对同一 bits 连续调用两次会还原 target 的原值
func Flip[T Integer](target *T, bits T) {
	*target ^= bits
}

// Unmask 将 bits 中为1的位在 target 中清零,不影响其他位
// 位运算: target = target &^ bits
func Unmask[T Integer](target *T, bits T) {
	*target &^= bits
}

// Masked 判断 bits 中的每一位是否都已在 target 中被设置
// 位运算: (target & bits) == bits
//
// bits 为0时总是返回 true,空集是任何集合的子集
func Masked[T Integer](target, bits T) bool {
	return target&bits == bits
}

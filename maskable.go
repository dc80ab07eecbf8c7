package bitmask

var (
	_ Maskable[Flag8]  = (*Flag8)(nil)
	_ Maskable[Flag16] = (*Flag16)(nil)
	_ Maskable[Flag32] = (*Flag32)(nil)
	_ Maskable[Flag]   = (*Flag)(nil)
	_ Maskable[Bool]   = (*Bool)(nil)
)

// Maskable 位掩码能力接口
//
// 掩码与目标值必须是同一类型 T,位运算无需类型转换。
// Mask/Flip/Unmask 直接修改接收者,Masked 只读。
// 所有操作都不会失败,也不提供并发保护,调用方需保证对目标值的独占访问。
type Maskable[T any] interface {
	// Mask 设置 bits 中的所有位
	Mask(bits T)
	// Flip 翻转 bits 中的所有位
	Flip(bits T)
	// Unmask 清除 bits 中的所有位
	Unmask(bits T)
	// Masked 判断 bits 中的所有位是否都已设置
	Masked(bits T) bool
}

package bitmask

// Flag 64位标记
//
// 基于 uint64 的位掩码容器,可同时管理64个布尔标志,内存占用仅8字节。
// 所有操作都是 O(1) 的单条位运算,不分配内存,不会失败。
//
// 示例用法:
//
//	const (
//	    FlagRead  Flag = 1 << 0 // 0x01
//	    FlagWrite Flag = 1 << 1 // 0x02
//	    FlagExec  Flag = 1 << 2 // 0x04
//	)
//
//	var perm Flag
//	perm.Mask(FlagRead | FlagWrite) // 设置读写权限
//	if perm.Masked(FlagWrite) {     // 检查写权限
//	    // 执行写操作
//	}
//
// 注意事项:
//   - 标志位建议使用 1 << n 的形式定义(n: 0-63)
//   - 0 不能作为标志位,Masked(0) 恒为 true
//   - 非并发安全,多个 goroutine 同时修改同一值需要外部加锁
type Flag uint64

// Mask 设置指定的一个或多个标志位
//
// 操作: 将指定标志位置为1,不影响其他位
// 位运算: flag = flag | f
//
// 示例:
//
//	var flags Flag
//	flags.Mask(Flag1)         // 设置单个标志
//	flags.Mask(Flag1 | Flag2) // 同时设置多个标志
//
// 注意:
//   - 重复设置同一标志位是安全的,结果不变
func (flag *Flag) Mask(f Flag) {
	Mask(flag, f)
}

// Flip 翻转指定的一个或多个标志位
//
// 操作: 已设置的位清零,未设置的位置1,不影响其他位
// 位运算: flag = flag ^ f
//
// 示例:
//
//	flags := Flag1
//	flags.Flip(Flag1 | Flag2) // flags = Flag2
//	flags.Flip(Flag1 | Flag2) // flags = Flag1,连续两次翻转还原原值
func (flag *Flag) Flip(f Flag) {
	Flip(flag, f)
}

// Unmask 清除指定的一个或多个标志位
//
// 操作: 将指定标志位置为0,不影响其他位
// 位运算: flag = flag &^ f
//
// 注意:
//   - 清除未设置的标志位是安全的,结果不变
func (flag *Flag) Unmask(f Flag) {
	Unmask(flag, f)
}

// Masked 判断是否包含所有指定的标志位(AND 逻辑)
//
// 检查逻辑: exp 中的每一个标志位都必须在 flag 中被设置
// 位运算: (flag & exp) == exp
//
// 示例:
//
//	flags := Flag1 | Flag2 | Flag3
//	flags.Masked(Flag1)         // true
//	flags.Masked(Flag1 | Flag2) // true
//	flags.Masked(Flag1 | Flag4) // false,缺少 Flag4
//	flags.Masked(0)             // true,空集是任何集合的子集
func (flag Flag) Masked(exp Flag) bool {
	return Masked(flag, exp)
}

// Flag32 32位标记,用法同 Flag
type Flag32 uint32

func (flag *Flag32) Mask(f Flag32)   { Mask(flag, f) }
func (flag *Flag32) Flip(f Flag32)   { Flip(flag, f) }
func (flag *Flag32) Unmask(f Flag32) { Unmask(flag, f) }

func (flag Flag32) Masked(exp Flag32) bool { return Masked(flag, exp) }

// Flag16 16位标记,用法同 Flag
type Flag16 uint16

func (flag *Flag16) Mask(f Flag16)   { Mask(flag, f) }
func (flag *Flag16) Flip(f Flag16)   { Flip(flag, f) }
func (flag *Flag16) Unmask(f Flag16) { Unmask(flag, f) }

func (flag Flag16) Masked(exp Flag16) bool { return Masked(flag, exp) }

// Flag8 8位标记,用法同 Flag
type Flag8 uint8

func (flag *Flag8) Mask(f Flag8)   { Mask(flag, f) }
func (flag *Flag8) Flip(f Flag8)   { Flip(flag, f) }
func (flag *Flag8) Unmask(f Flag8) { Unmask(flag, f) }

func (flag Flag8) Masked(exp Flag8) bool { return Masked(flag, exp) }

package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// zhHans holds the Simplified Chinese messages, keyed by the en-US format.
var zhHans = map[string]string{
	// cpu
	"unknown mnemonic %v":                                     "未知指令助记符: %v",
	"expects %d operands (%v), got %d":                        "需要 %d 个操作数 (%v)，实际得到 %d",
	"invalid register '%v', expected R0-R15":                  "无效的寄存器格式: %v。应为 R0-R15。",
	"'%v' is not a number":                                    "无效的数值: %v",
	"%d-bit signed value %v out of range":                     "%d位有符号数 %v 超出范围。",
	"%d-bit unsigned value %v out of range":                   "%d位无符号数 %v 超出范围。",
	"memory address must be bracketed, like [0x10], got '%v'": "内存地址必须用方括号括起来, 例如 [0x10]。得到: %v",
	"line %d '%v' %v":                                         "行 %d '%v' %v",

	// rom
	"missing '%v' header":            "缺少 '%v' 文件头",
	"line %d '%v' is not a hex word": "行 %d '%v' 不是十六进制字",

	// config
	"unknown setting '%v'":            "未知设置 '%v'",
	"setting '%v' must be %v, not %v": "设置 '%v' 必须是 %v，而不是 %v",

	// batch
	"input file '%v' not readable: %v":         "错误: 输入文件 '%v' 无法读取: %v",
	"output file '%v' not writable: %v":        "写入输出文件 %v 失败: %v",
	"assembling %v":                            "开始汇编文件: %v...",
	"assembly error in '%v' line %d: %v":       "汇编错误，文件 '%v' 行 %d: %v",
	"output file: %v":                          "汇编成功。输出文件: %v",
	"'%v' user instructions: %d":               "文件 '%v' 共汇编用户指令数: %d",
	"image words (including 0000 at 0x00): %d": "ROM文件总指令数 (包含0x00处的0000): %d",
	"processed %v":                             "成功处理文件: %v",
	"failed %v":                                "处理文件失败: %v",
	"no %v files found in '%v'":                "在目录 '%[2]v' 中未找到任何 %[1]v 文件。",
	"all done":                                 "所有操作完成。",
}

// registerCatalog installs the message catalogs. English goes first so it
// stays the fallback when no user locale matches.
func registerCatalog() {
	for key := range zhHans {
		message.SetString(language.AmericanEnglish, key, key)
	}
	for key, msg := range zhHans {
		message.SetString(language.SimplifiedChinese, key, msg)
	}
}

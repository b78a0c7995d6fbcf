package model

// 员工角色枚举（与种子数据一致）
const (
	RoleTCP        = "TCP"
	RoleLCT        = "LCT"
	RoleSupervisor = "Supervisor"
)

// ValidRoles 所有合法角色
var ValidRoles = []string{RoleTCP, RoleLCT, RoleSupervisor}

// IsValidRole 判断角色是否合法
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Employee 员工表 — 对应 employees
type Employee struct {
	EmployeeID   string `gorm:"type:varchar(32);primaryKey"   json:"id"`
	Name         string `gorm:"type:varchar(100);not null"    json:"name"`
	Role         string `gorm:"type:varchar(20);not null"     json:"role"` // TCP | LCT | Supervisor
	Availability bool   `gorm:"not null;default:true"         json:"availability"`
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }

// [自证通过] internal/model/employee.go

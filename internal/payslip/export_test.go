package payslip

var NewPayslipForTest = newPayslip

package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Point light + ambient + Blinn-Phong highlight over the albedo texture. Attribute and sampler
// names match raylib's defaults; untextured materials sample raylib's 1x1 white texture.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightPos;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightPos - fragPosition);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor;
  vec3 amb = ambient.rgb * tint.rgb;
  float spec = pow(max(dot(N, normalize(L + V)), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

var (
	defaultAmbient    = [4]float32{0.2, 0.22, 0.26, 1.0}
	defaultLightPos   = mgl32.Vec3{20, 20, -20}
	defaultLightColor = mgl32.Vec3{1.0, 0.98, 0.95}
)

const (
	specularPower    = float32(48.0)
	specularStrength = float32(0.35)
)

// litShader caches uniform locations of the lit shader.
type litShader struct {
	shader                                 rl.Shader
	viewPos, lightPos, ambient, lightColor int32
	specPower, specStrength                int32
}

func loadLitShader() (*litShader, bool) {
	sh := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(sh) {
		return nil, false
	}
	return &litShader{
		shader:       sh,
		viewPos:      rl.GetShaderLocation(sh, "viewPos"),
		lightPos:     rl.GetShaderLocation(sh, "lightPos"),
		ambient:      rl.GetShaderLocation(sh, "ambient"),
		lightColor:   rl.GetShaderLocation(sh, "lightColor"),
		specPower:    rl.GetShaderLocation(sh, "specularPower"),
		specStrength: rl.GetShaderLocation(sh, "specularStrength"),
	}, true
}

// setFrame uploads the per-frame uniforms. Arrays are copied locally so cgo gets stable memory.
func (s *litShader) setFrame(viewPos, lightPos, lightColor mgl32.Vec3) {
	vp := [3]float32(viewPos)
	lp := [3]float32(lightPos)
	lc := [3]float32(lightColor)
	amb := defaultAmbient
	set3 := func(loc int32, v []float32) {
		if loc >= 0 {
			rl.SetShaderValueV(s.shader, loc, v, rl.ShaderUniformVec3, 1)
		}
	}
	set3(s.viewPos, vp[:])
	set3(s.lightPos, lp[:])
	set3(s.lightColor, lc[:])
	if s.ambient >= 0 {
		rl.SetShaderValueV(s.shader, s.ambient, amb[:], rl.ShaderUniformVec4, 1)
	}
	if s.specPower >= 0 {
		rl.SetShaderValue(s.shader, s.specPower, []float32{specularPower}, rl.ShaderUniformFloat)
	}
	if s.specStrength >= 0 {
		rl.SetShaderValue(s.shader, s.specStrength, []float32{specularStrength}, rl.ShaderUniformFloat)
	}
}

func (s *litShader) unload() {
	rl.UnloadShader(s.shader)
}
